package tracker

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/louisbranch/bloom/internal/services/tracker/domain/action"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/store"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client calls the tracker service.
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient wraps conn.
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

func (c *Client) invoke(ctx context.Context, method string, req, resp any) error {
	in, err := toStruct(req)
	if err != nil {
		return err
	}
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, FullMethod(method), in, out); err != nil {
		return err
	}
	return fromStruct(out, resp)
}

// Dispatch applies env and returns the new snapshot.
func (c *Client) Dispatch(ctx context.Context, env action.Envelope) (store.State, error) {
	var resp StateResponse
	if err := c.invoke(ctx, MethodDispatch, env, &resp); err != nil {
		return store.State{}, err
	}
	return resp.State, nil
}

// State returns the current snapshot.
func (c *Client) State(ctx context.Context) (store.State, error) {
	var resp StateResponse
	if err := c.invoke(ctx, MethodGetState, struct{}{}, &resp); err != nil {
		return store.State{}, err
	}
	return resp.State, nil
}

// Export returns a full backup.
func (c *Client) Export(ctx context.Context) (store.ExportData, error) {
	var resp store.ExportData
	if err := c.invoke(ctx, MethodExport, struct{}{}, &resp); err != nil {
		return store.ExportData{}, err
	}
	return resp, nil
}

// Summary returns the dashboard summary. Use WithLocale on ctx to pick the
// language of the localized strings.
func (c *Client) Summary(ctx context.Context) (SummaryResponse, error) {
	var resp SummaryResponse
	if err := c.invoke(ctx, MethodSummary, struct{}{}, &resp); err != nil {
		return SummaryResponse{}, err
	}
	return resp, nil
}

// ListJournal returns one page of journaled actions.
func (c *Client) ListJournal(ctx context.Context, req ListJournalRequest) (ListJournalResponse, error) {
	var resp ListJournalResponse
	if err := c.invoke(ctx, MethodListJournal, req, &resp); err != nil {
		return ListJournalResponse{}, err
	}
	return resp, nil
}

// Login signs in and returns the session.
func (c *Client) Login(ctx context.Context, req LoginRequest) (SessionResponse, error) {
	var resp SessionResponse
	if err := c.invoke(ctx, MethodLogin, req, &resp); err != nil {
		return SessionResponse{}, err
	}
	return resp, nil
}

// Register creates an account and returns the session.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (SessionResponse, error) {
	var resp SessionResponse
	if err := c.invoke(ctx, MethodRegister, req, &resp); err != nil {
		return SessionResponse{}, err
	}
	return resp, nil
}

// Watch calls fn with the current snapshot and then with each change until
// ctx ends, the server closes the stream or fn returns an error.
func (c *Client) Watch(ctx context.Context, fn func(store.State) error) error {
	stream, err := c.conn.NewStream(ctx, &ServiceDesc.Streams[0], FullMethod(MethodSubscribe))
	if err != nil {
		return err
	}
	if err := stream.SendMsg(&structpb.Struct{}); err != nil {
		return err
	}
	if err := stream.CloseSend(); err != nil {
		return err
	}
	for {
		out := new(structpb.Struct)
		if err := stream.RecvMsg(out); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		var resp StateResponse
		if err := fromStruct(out, &resp); err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		if err := fn(resp.State); err != nil {
			return err
		}
	}
}
