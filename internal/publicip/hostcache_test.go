package publicip

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) HostIP(host string) string {
	return m.Called(host).String(0)
}

func (m *MockStore) SetHostIP(host, ip string) {
	m.Called(host, ip)
}

func (m *MockStore) Save() error {
	return m.Called().Error(0)
}

func fakeLookup(table map[string][]net.IPAddr) LookupFunc {
	return func(ctx context.Context, host string) ([]net.IPAddr, error) {
		addrs, ok := table[host]
		if !ok {
			return nil, errors.New("no such host")
		}
		return addrs, nil
	}
}

func TestRefreshStoresChangedHosts(t *testing.T) {
	store := new(MockStore)
	store.On("HostIP", "icanhazip.com").Return("104.16.184.241")
	store.On("HostIP", "v4.ident.me").Return("")
	store.On("SetHostIP", "v4.ident.me", "49.12.234.183").Return()
	store.On("Save").Return(nil)

	c := NewHostCache(store, "icanhazip.com", "v4.ident.me", "gone.example").WithLookup(fakeLookup(map[string][]net.IPAddr{
		"icanhazip.com": {{IP: net.ParseIP("104.16.184.241")}},
		"v4.ident.me":   {{IP: net.ParseIP("2a01:4f8::1")}, {IP: net.ParseIP("49.12.234.183")}},
	}))

	changed, err := c.Refresh(context.Background())
	require.NoError(t, err)
	assert.True(t, changed)
	store.AssertExpectations(t)
}

func TestRefreshSkipsSaveWhenUnchanged(t *testing.T) {
	store := new(MockStore)
	store.On("HostIP", "icanhazip.com").Return("104.16.184.241")

	c := NewHostCache(store, "icanhazip.com").WithLookup(fakeLookup(map[string][]net.IPAddr{
		"icanhazip.com": {{IP: net.ParseIP("104.16.184.241")}},
	}))

	changed, err := c.Refresh(context.Background())
	require.NoError(t, err)
	assert.False(t, changed)
	store.AssertNotCalled(t, "Save")
	store.AssertNotCalled(t, "SetHostIP", mock.Anything, mock.Anything)
}
