package api

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "merkletree/api/tree"
	"merkletree/merkle"
)

// Server serves one in-memory merkle tree over gRPC. The tree itself is not
// safe for concurrent mutation, so all access is serialized here: Build and
// Insert take the write lock, Contains and Digest the read lock.
type Server struct {
	pb.UnimplementedTreeServer

	mu     sync.RWMutex
	tree   *merkle.Tree
	logger *zap.SugaredLogger
}

func NewServer(tree *merkle.Tree, logger *zap.SugaredLogger) *Server {
	return &Server{tree: tree, logger: logger}
}

func (s *Server) Build(_ context.Context, blocks *pb.Blocks) (*pb.Hash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tree = merkle.New(blocks.Blocks)
	s.logger.Infow("tree rebuilt", "leaves", len(blocks.Blocks))

	return &pb.Hash{Hash: s.tree.RootHash()}, nil
}

func (s *Server) Insert(_ context.Context, block *pb.Block) (*pb.Empty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tree.Insert(block.Data)

	return &pb.Empty{}, nil
}

func (s *Server) Contains(_ context.Context, block *pb.Block) (*pb.Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return &pb.Membership{Present: s.tree.Contains(block.Data)}, nil
}

func (s *Server) Digest(context.Context, *pb.Empty) (*pb.Hash, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	digest := s.tree.RootHash()
	if digest == nil {
		return nil, status.Error(codes.Unavailable, "empty tree")
	}

	return &pb.Hash{Hash: digest}, nil
}
