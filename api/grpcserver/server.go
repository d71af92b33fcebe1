// Package grpcserver adapts the order service to the gRPC API.
package grpcserver

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "pitchbook/api/pb"
	"pitchbook/domain/book"
	"pitchbook/service"
)

// Server adapts OrderService to gRPC.
type Server struct {
	pb.UnimplementedOrderBookServer
	svc *service.OrderService
	log *zap.Logger
}

func NewServer(svc *service.OrderService, log *zap.Logger) *Server {
	return &Server{svc: svc, log: log}
}

// -------------------- Commands --------------------

func (s *Server) AddOrder(
	ctx context.Context,
	req *pb.AddOrderRequest,
) (*pb.AddOrderResponse, error) {
	side, err := toSide(req.Side)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	execs, seq, err := s.svc.PlaceOrder(req.OrderId, side, req.Price, req.Volume)
	if err != nil {
		if service.IsInvalid(err) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.log.Error("AddOrder failed", zap.Uint64("order_id", req.OrderId), zap.Error(err))
		return nil, status.Error(codes.Internal, err.Error())
	}

	remaining := req.Volume
	for _, e := range execs {
		remaining -= e.Volume
	}

	resp := &pb.AddOrderResponse{
		Seq:        seq,
		Executions: make([]*pb.Execution, 0, len(execs)),
		Remaining:  remaining,
	}
	for _, e := range execs {
		resp.Executions = append(resp.Executions, &pb.Execution{
			Seq:        e.Seq,
			RestingId:  e.RestingID,
			IncomingId: e.IncomingID,
			Price:      e.Price,
			Volume:     e.Volume,
			TakerSide:  fromSide(book.Side(e.TakerSide)),
		})
	}
	return resp, nil
}

func (s *Server) CancelOrder(
	ctx context.Context,
	req *pb.CancelOrderRequest,
) (*pb.CancelOrderResponse, error) {
	if err := s.svc.CancelOrder(req.OrderId); err != nil {
		if service.IsNotFound(err) {
			return nil, status.Errorf(codes.NotFound, "order %d not found", req.OrderId)
		}
		s.log.Error("CancelOrder failed", zap.Uint64("order_id", req.OrderId), zap.Error(err))
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &pb.CancelOrderResponse{Ok: true}, nil
}

// -------------------- Queries --------------------

func (s *Server) TopOfBook(
	ctx context.Context,
	req *pb.TopOfBookRequest,
) (*pb.TopOfBookResponse, error) {
	bid, ask := s.svc.TopOfBook()
	return &pb.TopOfBookResponse{Bid: bid, Ask: ask}, nil
}

func (s *Server) Depth(
	ctx context.Context,
	req *pb.DepthRequest,
) (*pb.DepthResponse, error) {
	side, err := toSide(req.Side)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	levels := s.svc.Depth(side, int(req.MaxLevels))

	resp := &pb.DepthResponse{
		Levels: make([]*pb.DepthLevel, 0, len(levels)),
	}
	for _, l := range levels {
		resp.Levels = append(resp.Levels, &pb.DepthLevel{
			Price:  l.Price,
			Volume: l.Volume,
		})
	}
	return resp, nil
}

// -------------------- Converters --------------------

func toSide(s pb.Side) (book.Side, error) {
	switch s {
	case pb.Side_BID:
		return book.Buy, nil
	case pb.Side_ASK:
		return book.Sell, nil
	default:
		return 0, fmt.Errorf("unrecognized side %d", s)
	}
}

func fromSide(s book.Side) pb.Side {
	if s == book.Sell {
		return pb.Side_ASK
	}
	return pb.Side_BID
}
