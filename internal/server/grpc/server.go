// Package grpcserver exposes the flashdeck gRPC API handlers.
package grpcserver

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/and161185/flashdeck/gen/go/flashdeck/v1"
	"github.com/and161185/flashdeck/internal/convert"
	"github.com/and161185/flashdeck/internal/errs"
	"github.com/and161185/flashdeck/internal/generation"
	"github.com/and161185/flashdeck/internal/service"
)

// ServicePrefix matches every method of the Decks service.
var ServicePrefix = "/" + pb.Decks_ServiceDesc.ServiceName + "/"

// Server wires services into gRPC handlers.
type Server struct {
	pb.UnimplementedDecksServer
	ws  service.WorkspaceService
	gen service.GenerationService
}

// New constructs a gRPC server with injected services.
func New(ws service.WorkspaceService, gen service.GenerationService) *Server {
	return &Server{ws: ws, gen: gen}
}

func caller(ctx context.Context) (Identity, error) {
	id, ok := IdentityFromCtx(ctx)
	if !ok {
		return Identity{}, status.Error(codes.Unauthenticated, "no identity")
	}
	return id, nil
}

// owner resolves the workspace owner. Guests keep their decks on the device
// and have no server workspace.
func owner(ctx context.Context) (string, error) {
	id, err := caller(ctx)
	if err != nil {
		return "", err
	}
	if id.Guest {
		return "", status.Error(codes.PermissionDenied, "workspace requires an account")
	}
	return id.ID, nil
}

// toStatus maps error kinds onto gRPC codes. Storage details are not exposed.
func toStatus(err error) error {
	var qe *errs.QuotaExceededError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &qe):
		return status.Error(codes.ResourceExhausted, qe.Error())
	case errors.Is(err, errs.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, errs.ErrCapacityExceeded):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, errs.ErrNotEmpty):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, errs.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, "no identity")
	case errors.Is(err, generation.ErrContentBlocked):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, errs.ErrTransient):
		return status.Error(codes.Unavailable, "temporarily unavailable, retry")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	default:
		return status.Error(codes.Internal, "internal")
	}
}

// --- Workspace ---

func (s *Server) CreateFolder(ctx context.Context, r *pb.CreateFolderRequest) (*pb.CreateFolderResponse, error) {
	own, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	parent, err := convert.ParseOptionalID(r.GetParentId())
	if err != nil {
		return nil, toStatus(err)
	}
	f, err := s.ws.CreateFolder(ctx, own, r.GetName(), parent)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.CreateFolderResponse{Folder: convert.ToProtoFolder(*f)}, nil
}

func (s *Server) CreateDeck(ctx context.Context, r *pb.CreateDeckRequest) (*pb.CreateDeckResponse, error) {
	own, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	folder, err := convert.ParseOptionalID(r.GetFolderId())
	if err != nil {
		return nil, toStatus(err)
	}
	d, err := s.ws.CreateDeck(ctx, own, r.GetTopic(), convert.FromProtoCards(r.GetCards()), folder)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.CreateDeckResponse{Deck: convert.ToProtoDeck(*d, true)}, nil
}

func (s *Server) ListChildren(ctx context.Context, r *pb.ListChildrenRequest) (*pb.ListChildrenResponse, error) {
	own, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	folder, err := convert.ParseOptionalID(r.GetFolderId())
	if err != nil {
		return nil, toStatus(err)
	}
	ch, err := s.ws.ListChildren(ctx, own, folder)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListChildrenResponse{
		Folders: convert.ToProtoFolders(ch.Folders),
		Decks:   convert.ToProtoDecks(ch.Decks),
	}, nil
}

func (s *Server) ResolvePath(ctx context.Context, r *pb.ResolvePathRequest) (*pb.ResolvePathResponse, error) {
	own, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	folder, err := convert.ParseOptionalID(r.GetFolderId())
	if err != nil {
		return nil, toStatus(err)
	}
	path, err := s.ws.ResolvePath(ctx, own, folder)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ResolvePathResponse{Path: convert.ToProtoFolders(path)}, nil
}

func (s *Server) GetDeck(ctx context.Context, r *pb.GetDeckRequest) (*pb.GetDeckResponse, error) {
	own, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	id, err := convert.ParseID(r.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	d, err := s.ws.GetDeck(ctx, own, id)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetDeckResponse{Deck: convert.ToProtoDeck(*d, true)}, nil
}

func (s *Server) DeleteFolder(ctx context.Context, r *pb.DeleteRequest) (*emptypb.Empty, error) {
	own, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	id, err := convert.ParseID(r.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, toStatus(s.ws.DeleteFolder(ctx, own, id))
}

func (s *Server) DeleteDeck(ctx context.Context, r *pb.DeleteRequest) (*emptypb.Empty, error) {
	own, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	id, err := convert.ParseID(r.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, toStatus(s.ws.DeleteDeck(ctx, own, id))
}

func (s *Server) RenameFolder(ctx context.Context, r *pb.RenameRequest) (*emptypb.Empty, error) {
	own, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	id, err := convert.ParseID(r.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, toStatus(s.ws.RenameFolder(ctx, own, id, r.GetName()))
}

func (s *Server) RenameDeck(ctx context.Context, r *pb.RenameRequest) (*emptypb.Empty, error) {
	own, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	id, err := convert.ParseID(r.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, toStatus(s.ws.RenameDeck(ctx, own, id, r.GetName()))
}

func (s *Server) ToggleFavorite(ctx context.Context, r *pb.ToggleFavoriteRequest) (*pb.ToggleFavoriteResponse, error) {
	own, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	id, err := convert.ParseID(r.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	kind, err := convert.FromProtoKind(r.GetKind())
	if err != nil {
		return nil, toStatus(err)
	}
	fav, err := s.ws.ToggleFavorite(ctx, own, id, kind)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ToggleFavoriteResponse{IsFavorite: fav}, nil
}

// --- Generation ---

// GenerateCards consumes one call from the caller's quota and returns the
// generated cards. Saving them is a separate CreateDeck call.
func (s *Server) GenerateCards(ctx context.Context, r *pb.GenerateCardsRequest) (*pb.GenerateCardsResponse, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	req := generation.Request{Topic: r.GetTopic(), NumCards: int(r.GetNumCards())}
	if len(r.GetDocument()) > 0 || r.GetMimeType() != "" {
		req.Document = &generation.Document{Name: r.GetDocumentName(), MIMEType: r.GetMimeType(), Data: r.GetDocument()}
	}
	res, err := s.gen.Generate(ctx, id.ID, req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GenerateCardsResponse{
		Topic:         res.Topic,
		Cards:         convert.ToProtoCards(res.Cards),
		QuotaUsed:     int32(res.Quota.Count),
		QuotaResetsAt: timestamppb.New(res.Quota.WindowExpiresAt),
	}, nil
}
