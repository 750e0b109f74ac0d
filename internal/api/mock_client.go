package api

// MockPortalClient is a mock implementation of PortalClientInterface for testing
type MockPortalClient struct {
	// Mock return values
	SendVal     string
	SendErr     error
	ResetVal    string
	ResetErr    error
	BaseURLVal  string
	IsClosedVal bool

	// Call counters/recorders
	SendCalls    int
	ResetCalls   int
	CloseCalled  bool
	SentMessages []string
}

// Ensure MockPortalClient implements PortalClientInterface
var _ PortalClientInterface = (*MockPortalClient)(nil)

func (m *MockPortalClient) Send(message string) (string, error) {
	m.SendCalls++
	m.SentMessages = append(m.SentMessages, message)
	return m.SendVal, m.SendErr
}

func (m *MockPortalClient) Reset() (string, error) {
	m.ResetCalls++
	return m.ResetVal, m.ResetErr
}

func (m *MockPortalClient) BaseURL() string {
	return m.BaseURLVal
}

func (m *MockPortalClient) Close() {
	m.CloseCalled = true
}

func (m *MockPortalClient) IsClosed() bool {
	return m.IsClosedVal
}
