package grpc

import (
	"context"

	"github.com/dmitrijs2005/picdiary/internal/imagex"
	pb "github.com/dmitrijs2005/picdiary/internal/proto"
	"github.com/dmitrijs2005/picdiary/internal/server/models"
	"github.com/dmitrijs2005/picdiary/internal/server/services"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// UserService is what the handlers need from services.UserService.
type UserService interface {
	Register(ctx context.Context, userName, password string) (*models.User, error)
	Login(ctx context.Context, userName, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

// InterviewService is what the handlers need from services.InterviewService.
type InterviewService interface {
	Start(ctx context.Context, owner string) (string, string)
	Answer(ctx context.Context, owner, sessionID, answer string) (string, error)
	Finalize(ctx context.Context, owner, sessionID, finalAnswer, date string) (*models.DiaryEntry, error)
	Close(owner, sessionID string) error
	Create(ctx context.Context, owner, title, body, date string) (*models.DiaryEntry, error)
}

// DiaryService is what the handlers need from services.DiaryService.
type DiaryService interface {
	Navigate(ctx context.Context, owner string, requested int) (*services.Page, error)
	List(ctx context.Context, owner string) ([]*models.DiaryEntry, map[int]string, error)
	Edit(ctx context.Context, owner string, seq int, title, body string) error
	Delete(ctx context.Context, owner string, seq int) error
}

var _ pb.DiaryServiceServer = (*GRPCServer)(nil)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request", "username", req.Username)

	user, err := s.users.Register(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "username", user.UserName)
	return &pb.RegisterResponse{Username: user.UserName}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	tokens, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.LoginResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) StartInterview(ctx context.Context, req *pb.StartInterviewRequest) (*pb.StartInterviewResponse, error) {
	owner, err := userNameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	id, question := s.interviews.Start(ctx, owner)
	return &pb.StartInterviewResponse{SessionId: id, Question: question}, nil
}

func (s *GRPCServer) Answer(ctx context.Context, req *pb.AnswerRequest) (*pb.AnswerResponse, error) {
	owner, err := userNameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	question, err := s.interviews.Answer(ctx, owner, req.SessionId, req.Answer)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.AnswerResponse{Question: question}, nil
}

func (s *GRPCServer) FinalizeInterview(ctx context.Context, req *pb.FinalizeInterviewRequest) (*pb.FinalizeInterviewResponse, error) {
	owner, err := userNameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := s.interviews.Finalize(ctx, owner, req.SessionId, req.Answer, req.Date)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Interview finalized", "username", owner, "number", entry.SequenceNumber)
	return &pb.FinalizeInterviewResponse{Entry: s.toProtoEntry(ctx, entry, "")}, nil
}

func (s *GRPCServer) CloseInterview(ctx context.Context, req *pb.CloseInterviewRequest) (*pb.CloseInterviewResponse, error) {
	owner, err := userNameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.interviews.Close(owner, req.SessionId); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.CloseInterviewResponse{}, nil
}

func (s *GRPCServer) CreateEntry(ctx context.Context, req *pb.CreateEntryRequest) (*pb.CreateEntryResponse, error) {
	owner, err := userNameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := s.interviews.Create(ctx, owner, req.Title, req.Body, req.Date)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.CreateEntryResponse{Entry: s.toProtoEntry(ctx, entry, "")}, nil
}

func (s *GRPCServer) ListEntries(ctx context.Context, req *pb.ListEntriesRequest) (*pb.ListEntriesResponse, error) {
	owner, err := userNameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	entries, images, err := s.diary.List(ctx, owner)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &pb.ListEntriesResponse{Entries: make([]*pb.Entry, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, s.toProtoEntry(ctx, e, images[e.SequenceNumber]))
	}
	return resp, nil
}

func (s *GRPCServer) GetEntry(ctx context.Context, req *pb.GetEntryRequest) (*pb.GetEntryResponse, error) {
	owner, err := userNameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	page, err := s.diary.Navigate(ctx, owner, int(req.Number))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.GetEntryResponse{
		Entry:      s.toProtoEntry(ctx, page.Entry, page.ImageURI),
		Redirected: page.Redirected,
		PostCount:  int32(page.PostCount),
	}, nil
}

func (s *GRPCServer) EditEntry(ctx context.Context, req *pb.EditEntryRequest) (*pb.EditEntryResponse, error) {
	owner, err := userNameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.diary.Edit(ctx, owner, int(req.Number), req.Title, req.Body); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.EditEntryResponse{}, nil
}

func (s *GRPCServer) DeleteEntry(ctx context.Context, req *pb.DeleteEntryRequest) (*pb.DeleteEntryResponse, error) {
	owner, err := userNameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.diary.Delete(ctx, owner, int(req.Number)); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Entry deleted", "username", owner, "number", req.Number)
	return &pb.DeleteEntryResponse{}, nil
}

// toProtoEntry converts e. When imageURI is empty and e carries loaded image
// bytes, they are encoded here.
func (s *GRPCServer) toProtoEntry(ctx context.Context, e *models.DiaryEntry, imageURI string) *pb.Entry {
	if imageURI == "" && len(e.Image) > 0 {
		uri, err := imagex.ToDataURI(e.Image)
		if err != nil {
			s.logger.Warn(ctx, "entry image not encodable", "number", e.SequenceNumber, "error", err)
		}
		imageURI = uri
	}
	return &pb.Entry{
		Number:    int32(e.SequenceNumber),
		Title:     e.Title,
		Body:      e.Body,
		Date:      e.EntryDate.Format("2006-01-02"),
		CreatedAt: timestamppb.New(e.CreatedAt),
		ImageUri:  imageURI,
	}
}
