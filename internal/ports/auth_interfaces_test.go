package ports_test

import (
	"testing"

	"github.com/tijaniyah/companion/internal/apiclient"
	"github.com/tijaniyah/companion/internal/data"
	mocks "github.com/tijaniyah/companion/internal/mocks/auth"
	"github.com/tijaniyah/companion/internal/ports"
)

// This test only verifies that adapters and mocks conform to the ports at compile time.
func TestImplementationsSatisfyPorts(t *testing.T) {
	t.Helper()

	var _ ports.AuthAPI = (*mocks.FakeAuthAPI)(nil)
	var _ ports.AuthAPI = (*apiclient.Client)(nil)
	var _ ports.FeedAPI = (*apiclient.Client)(nil)
	var _ ports.JournalAPI = (*apiclient.Client)(nil)
	var _ ports.ChatAPI = (*apiclient.Client)(nil)
	var _ ports.KeyValueStore = (*data.MemoryKVStore)(nil)
	var _ ports.KeyValueStore = (*data.FileKVStore)(nil)
	var _ ports.KeyValueStore = (*data.RedisKVStore)(nil)
	var _ ports.UserSnapshotStore = (*data.SessionRepo)(nil)
	var _ ports.AccountDirectory = (*data.AccountRepo)(nil)
}
