package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/picdiary/internal/client/models"
	"github.com/dmitrijs2005/picdiary/internal/common"
	pb "github.com/dmitrijs2005/picdiary/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.DiaryServiceClient

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = access
	s.refreshToken = refresh
}

// accessTokenInterceptor attaches the access token to every call. When the
// server reports an expired token it exchanges the refresh token once and
// retries. A failed exchange drops both tokens so the user has to log in
// again.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	access, refresh := s.tokens()

	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil || method == pb.DiaryService_RefreshToken_FullMethodName {
		return err
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refresh == "" {
		return err
	}

	resp, rerr := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if rerr != nil {
		s.setTokens("", "")
		return err
	}

	s.setTokens(resp.AccessToken, resp.RefreshToken)

	// tokens refreshed, retry with the new access token
	return invoker(withAccessToken(ctx, resp.AccessToken), method, req, reply, cc, opts...)
}

// NewDiaryClientService connects to endpointURL. Extra dial options are
// appended to the defaults (insecure transport plus the token interceptor).
func NewDiaryClientService(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient(opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, dialOpts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewDiaryServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Register(ctx context.Context, userName string, password []byte) error {

	req := &pb.RegisterRequest{Username: userName, Password: string(password)}

	_, err := s.client.Register(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *GRPCClient) Login(ctx context.Context, userName string, password []byte) error {

	req := &pb.LoginRequest{Username: userName, Password: string(password)}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	s.setTokens(resp.AccessToken, resp.RefreshToken)

	return nil
}

// Logout forgets the tokens. Refresh tokens expire on the server side.
func (s *GRPCClient) Logout() {
	s.setTokens("", "")
}

func (s *GRPCClient) LoggedIn() bool {
	access, _ := s.tokens()
	return access != ""
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) StartInterview(ctx context.Context) (string, string, error) {
	resp, err := s.client.StartInterview(ctx, &pb.StartInterviewRequest{})
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.SessionId, resp.Question, nil
}

func (s *GRPCClient) Answer(ctx context.Context, sessionID, answer string) (string, error) {
	resp, err := s.client.Answer(ctx, &pb.AnswerRequest{SessionId: sessionID, Answer: answer})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Question, nil
}

func (s *GRPCClient) FinalizeInterview(ctx context.Context, sessionID, answer, date string) (*models.Entry, error) {
	req := &pb.FinalizeInterviewRequest{SessionId: sessionID, Answer: answer, Date: date}
	resp, err := s.client.FinalizeInterview(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromProtoEntry(resp.Entry), nil
}

func (s *GRPCClient) CloseInterview(ctx context.Context, sessionID string) error {
	_, err := s.client.CloseInterview(ctx, &pb.CloseInterviewRequest{SessionId: sessionID})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) CreateEntry(ctx context.Context, title, body, date string) (*models.Entry, error) {
	resp, err := s.client.CreateEntry(ctx, &pb.CreateEntryRequest{Title: title, Body: body, Date: date})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromProtoEntry(resp.Entry), nil
}

func (s *GRPCClient) ListEntries(ctx context.Context) ([]*models.Entry, error) {
	resp, err := s.client.ListEntries(ctx, &pb.ListEntriesRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	entries := make([]*models.Entry, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		entries = append(entries, fromProtoEntry(e))
	}
	return entries, nil
}

func (s *GRPCClient) GetEntry(ctx context.Context, number int) (*models.Page, error) {
	resp, err := s.client.GetEntry(ctx, &pb.GetEntryRequest{Number: int32(number)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.Page{
		Entry:      fromProtoEntry(resp.Entry),
		Redirected: resp.Redirected,
		PostCount:  int(resp.PostCount),
	}, nil
}

func (s *GRPCClient) EditEntry(ctx context.Context, number int, title, body string) error {
	_, err := s.client.EditEntry(ctx, &pb.EditEntryRequest{Number: int32(number), Title: title, Body: body})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) DeleteEntry(ctx context.Context, number int) error {
	_, err := s.client.DeleteEntry(ctx, &pb.DeleteEntryRequest{Number: int32(number)})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func fromProtoEntry(e *pb.Entry) *models.Entry {
	entry := &models.Entry{
		Number:   int(e.GetNumber()),
		Title:    e.GetTitle(),
		Body:     e.GetBody(),
		Date:     e.GetDate(),
		ImageURI: e.GetImageUri(),
	}
	if e.GetCreatedAt() != nil {
		entry.CreatedAt = e.GetCreatedAt().AsTime()
	}
	return entry
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidInput, st.Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrAlreadyExists, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
