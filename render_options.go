package mdtok

import "log/slog"

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	logger      *slog.Logger
	headings    bool
	softWrap    bool
	frontMatter bool
}

func newRenderConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{headings: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}

// WithLogger sets the logger used for debug statistics.
func WithLogger(logger *slog.Logger) RenderOption {
	return func(cfg *renderConfig) {
		cfg.logger = logger
	}
}

// WithHeadings enables or disables '#' heading lines. Enabled by default.
func WithHeadings(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.headings = enabled
	}
}

// WithSoftWrap enables breaking words longer than the wrap width.
func WithSoftWrap(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.softWrap = enabled
	}
}

// WithFrontMatter keeps a leading front matter block as document text. By
// default Render drops it.
func WithFrontMatter(keep bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.frontMatter = keep
	}
}
