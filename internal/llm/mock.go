package llm

import "context"

// MockClient is a Client for tests. Calls records every request.
type MockClient struct {
	CompleteFn func(ctx context.Context, messages []Message, opts Options) (*Response, error)
	ModelName  string
	Calls      []MockCall
}

// MockCall is one recorded Complete invocation.
type MockCall struct {
	Messages []Message
	Options  Options
}

// Complete records the call and delegates to CompleteFn.
func (m *MockClient) Complete(ctx context.Context, messages []Message, opts Options) (*Response, error) {
	m.Calls = append(m.Calls, MockCall{Messages: messages, Options: opts})
	if m.CompleteFn != nil {
		return m.CompleteFn(ctx, messages, opts)
	}
	return &Response{Content: "mock summary", Model: m.Model()}, nil
}

// Provider returns the provider name
func (m *MockClient) Provider() Provider {
	return "mock"
}

// Model returns the model name
func (m *MockClient) Model() string {
	if m.ModelName == "" {
		return "mock-model"
	}
	return m.ModelName
}
