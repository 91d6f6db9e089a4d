package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/linguist/internal/profiles"
	"github.com/abhisek/linguist/internal/store"
)

// profileBackend picks where the profile record lives: Redis when a
// redis:// URL is configured, the SQLite record table otherwise. The
// returned close func releases a Redis connection and is never nil.
func profileBackend(ctx context.Context, cmd *cobra.Command, st *store.Store) (profiles.Backend, func(), error) {
	url := resolveStoreURL(cmd)
	switch {
	case url == "":
		return st.RecordRepo(), func() {}, nil
	case strings.HasPrefix(url, "redis://"), strings.HasPrefix(url, "rediss://"):
		b, err := profiles.NewRedisBackend(ctx, url)
		if err != nil {
			return nil, nil, err
		}
		return b, func() { b.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported profile store %q", url)
	}
}
