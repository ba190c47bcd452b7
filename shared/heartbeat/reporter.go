package heartbeat

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// DefaultInterval matches the portal frontend's periodic last-seen ping.
const DefaultInterval = 120 * time.Second

type beatPayload struct {
	UserID string `json:"userId"`
}

// Reporter periodically reports a user as alive by POSTing their identifier
// to the portal's heartbeat endpoint. A beat fires immediately on Start,
// then on every interval tick and on every Activity signal. Sends are
// fire-and-forget: transport failures are logged and never retried, and no
// ordering or delivery guarantee is provided.
type Reporter struct {
	endpoint string
	userID   string
	interval time.Duration
	client   *http.Client
	logger   zerolog.Logger

	activity chan struct{}
	done     chan struct{}
}

// NewReporter creates a Reporter for the given heartbeat endpoint and user.
// A zero interval falls back to DefaultInterval.
func NewReporter(endpoint, userID string, interval time.Duration, logger zerolog.Logger) *Reporter {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Reporter{
		endpoint: endpoint,
		userID:   userID,
		interval: interval,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger.With().Str("component", "heartbeat").Logger(),
		activity: make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// Start runs the beat loop until ctx is cancelled or Stop is called. A user
// without an identifier never reports.
func (r *Reporter) Start(ctx context.Context) {
	if r.userID == "" {
		return
	}

	r.send(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.done:
			return
		case <-ticker.C:
			r.send(ctx)
		case <-r.activity:
			r.send(ctx)
		}
	}
}

// Activity signals user activity, triggering an immediate beat. Signals are
// coalesced while a previous one is pending; rapid activity still produces
// bursts of sends, which is accepted rather than debounced.
func (r *Reporter) Activity() {
	select {
	case r.activity <- struct{}{}:
	default:
	}
}

// Stop terminates the beat loop. In-flight sends are not cancelled.
func (r *Reporter) Stop() {
	close(r.done)
}

func (r *Reporter) send(ctx context.Context) {
	body, err := json.Marshal(beatPayload{UserID: r.userID})
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to encode heartbeat payload")
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to build heartbeat request")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Warn().Err(err).Msg("heartbeat send failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.logger.Warn().Int("status", resp.StatusCode).Msg("heartbeat rejected")
	}
}
