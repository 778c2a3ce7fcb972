package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/version"

	"pkt.systems/mdtok"
	"pkt.systems/mdtok/internal/config"
	"pkt.systems/mdtok/internal/logs"
)

const (
	defaultWidth = 80
	formatAuto   = "auto"
	formatTokens = "tokens"
)

func init() {
	version.SetDefaultModule("pkt.systems/mdtok")
}

type options struct {
	themeName   string
	width       int
	format      string
	listThemes  bool
	outPath     string
	configPath  string
	noHeadings  bool
	softWrap    bool
	logLevel    string
	logFile     string
	printConfig bool
	color       string
	keepFront   bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	var opts options
	flags := pflag.NewFlagSet("mdtok", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.themeName, "theme", "t", "default", "Theme name for ansi output")
	flags.IntVarP(&opts.width, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.StringVarP(&opts.format, "format", "f", formatAuto, "Output format: auto|ansi|plain|html|tokens")
	flags.BoolVar(&opts.listThemes, "list-themes", false, "List available themes")
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output file instead of stdout")
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file (default ./"+config.FileName+" or user config dir)")
	flags.BoolVar(&opts.noHeadings, "no-headings", false, "Treat '#' lines as paragraph text")
	flags.BoolVar(&opts.softWrap, "soft-wrap", false, "Break words longer than the wrap width")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug|info|warn|error")
	flags.StringVar(&opts.logFile, "log-file", "", "Also write JSON logs to this file")
	flags.BoolVar(&opts.printConfig, "print-config", false, "Print the default config file and exit")
	flags.StringVar(&opts.color, "color", formatAuto, "Colour the tokens dump: auto|on|off")
	flags.BoolVar(&opts.keepFront, "keep-front-matter", false, "Render a leading front matter block as text")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: mdtok [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nIf no input is provided, markup is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.listThemes {
		for _, name := range mdtok.AvailableThemes() {
			fmt.Fprintln(stdout, name)
		}
		return 0
	}
	if opts.printConfig {
		fmt.Fprint(stdout, config.DefaultYAML)
		return 0
	}

	level, err := logs.ParseLevel(opts.logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --log-level: %v\n", err)
		return 2
	}
	var logOut io.Writer
	if opts.logFile != "" {
		f, err := os.OpenFile(normalizePath(opts.logFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(stderr, "open log file: %v\n", err)
			return 1
		}
		defer func() { _ = f.Close() }()
		logOut = f
	}
	logger := logs.New(stderr, logOut, level)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		logger.Error("load config", "error", err)
		return 1
	}
	applyFlags(&cfg, flags, opts)
	tags, err := cfg.TagSet()
	if err != nil {
		logger.Error("tag definitions", "error", err)
		return 2
	}
	theme, ok := mdtok.ThemeByName(cfg.Theme)
	if !ok {
		logger.Error("unknown theme", "theme", cfg.Theme, "available", strings.Join(mdtok.AvailableThemes(), ","))
		return 2
	}

	reader, closer, err := openInputs(flags.Args(), stdin)
	if err != nil {
		logger.Error("open input", "error", err)
		return 1
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	src, err := io.ReadAll(reader)
	if err != nil {
		logger.Error("read input", "error", err)
		return 1
	}
	if err := mdtok.ValidateInput(src); err != nil {
		logger.Error("invalid input", "error", err)
		return 1
	}

	writer, closeOut, err := resolveOutput(opts.outPath, stdout)
	if err != nil {
		logger.Error("open output", "error", err)
		return 1
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	formatName := strings.ToLower(strings.TrimSpace(cfg.Format))
	logger.Debug("rendering", "bytes", len(src), "format", formatName, "theme", theme.Name(), "families", tags.Len())
	if formatName == formatTokens {
		text := string(src)
		if _, body, ok := mdtok.SplitFrontMatter(text); ok && !opts.keepFront {
			text = body
		}
		if err := dumpTokens(writer, text, tags, cfg.HeadingsEnabled(), resolveColor(opts.color, writer)); err != nil {
			logger.Error("dump tokens", "error", err)
			return 1
		}
		return 0
	}
	format, err := resolveFormat(formatName, writer)
	if err != nil {
		logger.Error("invalid format", "error", err)
		return 2
	}
	renderOpts := []mdtok.RenderOption{
		mdtok.WithLogger(logger),
		mdtok.WithHeadings(cfg.HeadingsEnabled()),
		mdtok.WithSoftWrap(opts.softWrap),
		mdtok.WithFrontMatter(opts.keepFront),
	}
	if err := mdtok.RenderString(string(src), mdtok.RenderRequest{
		Writer:  writer,
		Format:  format,
		Width:   resolveWidth(cfg.Width),
		Theme:   theme,
		Tags:    tags,
		Options: renderOpts,
	}); err != nil {
		logger.Error("render", "error", err)
		return 1
	}
	return 0
}

// applyFlags lets explicitly set flags override the config file.
func applyFlags(cfg *config.Config, flags *pflag.FlagSet, opts options) {
	if flags.Changed("theme") {
		cfg.Theme = opts.themeName
	}
	if flags.Changed("width") {
		cfg.Width = opts.width
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if opts.noHeadings {
		headings := false
		cfg.Headings = &headings
	}
}

func resolveFormat(name string, w io.Writer) (mdtok.Format, error) {
	if name == "" || name == formatAuto {
		if isTerminal(w) {
			return mdtok.FormatANSI, nil
		}
		return mdtok.FormatPlain, nil
	}
	return mdtok.ParseFormat(name)
}

func resolveColor(mode string, w io.Writer) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "on", "true", "1", "yes":
		return true
	case "off", "false", "0", "no":
		return false
	default:
		return isTerminal(w)
	}
}

func dumpTokens(w io.Writer, src string, tags *mdtok.TagSet, headings bool, color bool) error {
	for i, block := range mdtok.SplitBlocks(src, headings) {
		for j, line := range block.Lines {
			if _, err := fmt.Fprintf(w, "# block %d %s line %d: %q\n", i, block.Kind, j, line); err != nil {
				return err
			}
			tokens := mdtok.Normalize(line, tags.Lex(line))
			if err := mdtok.DumpTokens(w, line, tokens, tags, mdtok.DumpOptions{Color: color, MaxValue: 40}); err != nil {
				return err
			}
		}
	}
	return nil
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

type inputSource struct {
	open func() (io.Reader, io.Closer, error)
}

type multiInputReader struct {
	sources   []inputSource
	idx       int
	cur       io.Reader
	curCloser io.Closer
	closed    bool
}

func (m *multiInputReader) Read(p []byte) (int, error) {
	for {
		if m.closed {
			return 0, io.EOF
		}
		if m.cur == nil {
			if m.idx >= len(m.sources) {
				m.closed = true
				return 0, io.EOF
			}
			reader, closer, err := m.sources[m.idx].open()
			if err != nil {
				return 0, err
			}
			m.cur = reader
			m.curCloser = closer
			m.idx++
		}
		n, err := m.cur.Read(p)
		if n > 0 {
			return n, nil
		}
		if err == io.EOF {
			if m.curCloser != nil {
				_ = m.curCloser.Close()
			}
			m.cur = nil
			m.curCloser = nil
			continue
		}
		if err != nil {
			return 0, err
		}
	}
}

func (m *multiInputReader) Close() error {
	m.closed = true
	if m.curCloser != nil {
		return m.curCloser.Close()
	}
	return nil
}

func openInputs(args []string, stdin io.Reader) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return stdin, nil, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	m := &multiInputReader{sources: sources}
	return m, m, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, resp.Body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
