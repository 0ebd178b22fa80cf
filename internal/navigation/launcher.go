package navigation

import (
	"context"
	"sync"

	"wedding-map/internal/models"

	"github.com/rs/zerolog"
)

// Opener opens a URL in a new browsing context that has no handle back to the map.
type Opener interface {
	Open(url string) error
}

// Launcher opens external directions for a venue. Requests are fire-and-forget;
// only the most recently issued one is allowed to open anything.
type Launcher struct {
	resolver *Resolver
	opener   Opener
	logger   zerolog.Logger

	// mu orders issuing a request against the latest-check and Open of another.
	mu  sync.Mutex
	seq uint64
}

// NewLauncher creates a launcher.
func NewLauncher(resolver *Resolver, opener Opener, logger zerolog.Logger) *Launcher {
	if resolver == nil || opener == nil {
		panic("navigation: launcher needs a resolver and an opener")
	}
	return &Launcher{resolver: resolver, opener: opener, logger: logger}
}

// NavigateTo starts a navigation request and returns without waiting for a
// position; it only waits for an Open already in progress. The returned
// channel yields exactly one Result and is then closed; callers may ignore it.
func (l *Launcher) NavigateTo(ctx context.Context, venue models.Venue) <-chan Result {
	l.mu.Lock()
	l.seq++
	seq := l.seq
	l.mu.Unlock()
	out := make(chan Result, 1)

	go func() {
		defer close(out)

		res := l.resolver.Resolve(ctx, venue)
		res.Seq = seq

		l.mu.Lock()
		defer l.mu.Unlock()

		if latest := l.seq; latest != seq {
			res.Superseded = true
			l.logger.Debug().Uint64("seq", seq).Uint64("latest", latest).Str("venue", venue.Key).Msg("discarding superseded navigation")
			out <- res
			return
		}

		if res.Fallback {
			l.logger.Info().Err(res.Cause).Str("venue", venue.Key).Msg("no position, falling back to address search")
		}

		if err := l.opener.Open(res.URL); err != nil {
			res.OpenErr = err
			l.logger.Warn().Err(err).Str("url", res.URL).Msg("failed to open navigation url")
		}
		out <- res
	}()

	return out
}
