package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"capsync/internal/align"
	"capsync/internal/captions"
	"capsync/internal/logging"
	"capsync/internal/runstore"
	"capsync/internal/textnorm"
	"capsync/internal/transcript"
	"capsync/internal/workspace"
)

type alignOptions struct {
	format          string
	granularity     string
	outputPath      string
	audioDuration   float64
	uniformFallback bool
	jsonOutput      bool
}

type alignSummary struct {
	RunID       string  `json:"run_id"`
	Granularity string  `json:"granularity"`
	Tokens      int     `json:"tokens"`
	Fragments   int     `json:"fragments"`
	Resolved    int     `json:"resolved"`
	Coverage    float64 `json:"coverage"`
	TimelineEnd float64 `json:"timeline_end"`
	OutputPath  string  `json:"output_path"`
	Uniform     bool    `json:"uniform"`
}

func newAlignCommand(ctx *commandContext) *cobra.Command {
	opts := alignOptions{}

	cmd := &cobra.Command{
		Use:   "align <script> <transcript>",
		Short: "Align a script against a timed transcript",
		Long: `Align reads a script file and a timed transcript, reconciles the two,
and writes a word-level caption timeline as JSON. Whisper word-timestamp
JSON and Praat TextGrid transcripts are supported.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlign(cmd, ctx, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Transcript format: whisper, textgrid (default: by extension)")
	cmd.Flags().StringVarP(&opts.granularity, "granularity", "g", "", "Alignment granularity: char, token (default: by format)")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Timeline output path (default: <script>.words.json)")
	cmd.Flags().Float64VarP(&opts.audioDuration, "duration", "d", 0, "Audio duration in seconds, used by the uniform fallback")
	cmd.Flags().BoolVar(&opts.uniformFallback, "uniform-fallback", false, "Distribute tokens evenly when the transcript has no usable timing")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the run summary as JSON")

	return cmd
}

func runAlign(cmd *cobra.Command, ctx *commandContext, scriptPath, transcriptPath string, opts alignOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}
	logger = logging.NewComponentLogger(logger, "align")
	started := time.Now()

	scriptData, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	segmenter, err := textnorm.LoadSegmenter(cfg.Segmenter.DictionaryPath, cfg.Segmenter.CustomWords)
	if err != nil {
		return err
	}
	tokens := textnorm.Tokenize(textnorm.Normalize(string(scriptData)), segmenter)
	if len(tokens) == 0 {
		return fmt.Errorf("script %s has no alignable tokens", scriptPath)
	}

	format, err := resolveFormat(opts.format, transcriptPath)
	if err != nil {
		return err
	}
	fragments, err := readTranscript(transcriptPath, format)
	if err != nil {
		return err
	}
	for i := range fragments {
		fragments[i].Text = textnorm.Normalize(fragments[i].Text)
	}

	granularity, err := resolveGranularity(opts.granularity, format)
	if err != nil {
		return err
	}

	engine := align.NewEngine(cfg.AlignOptions())
	logger.Info("aligning script",
		logging.Args(
			logging.String("script", scriptPath),
			logging.String("transcript", transcriptPath),
			logging.String("format", format),
			logging.String("granularity", granularity),
			logging.Int("tokens", len(tokens)),
			logging.Int("fragments", len(fragments)),
		)...)

	var (
		words    []align.Word
		uniform  bool
		resolved int
	)
	charMode := granularity == "char"
	if charMode {
		words, err = engine.AlignChars(tokens, fragments)
	} else {
		words, err = engine.AlignTokens(tokens, fragments)
	}
	switch {
	case err == nil:
		resolved, _ = engine.Resolution(tokens, fragments, charMode)
	case errors.Is(err, align.ErrNoTimeSource) && (opts.uniformFallback || cfg.Align.UniformFallback):
		logger.Warn("transcript has no usable timing, distributing tokens uniformly",
			logging.Args(logging.Float64("duration", opts.audioDuration))...)
		words, err = align.UniformTimeline(tokens, opts.audioDuration, engine.Options())
		if err != nil {
			return err
		}
		uniform = true
	default:
		return err
	}

	outputPath := opts.outputPath
	if outputPath == "" {
		outputPath = strings.TrimSuffix(scriptPath, filepath.Ext(scriptPath)) + ".words.json"
	}
	display := captions.ApplyDisplayFloor(words, cfg.Align.DisplayFloor)
	if err := captions.WriteWordsJSON(outputPath, display); err != nil {
		return err
	}

	coverage := 0.0
	if len(tokens) > 0 {
		coverage = float64(resolved) / float64(len(tokens))
	}
	summary := alignSummary{
		Granularity: granularity,
		Tokens:      len(tokens),
		Fragments:   len(fragments),
		Resolved:    resolved,
		Coverage:    coverage,
		TimelineEnd: timelineEnd(words),
		OutputPath:  outputPath,
		Uniform:     uniform,
	}
	summary.RunID = recordRun(cmd, cfg.Paths.WorkspaceDir, logger, runstore.Record{
		Granularity:   granularity,
		TokenCount:    summary.Tokens,
		FragmentCount: summary.Fragments,
		ResolvedCount: summary.Resolved,
		Coverage:      summary.Coverage,
		TimelineEnd:   summary.TimelineEnd,
		ElapsedMS:     time.Since(started).Milliseconds(),
		OutputPath:    outputPath,
	}, scriptData, transcriptPath)

	logger.Info("timeline written",
		logging.Args(
			logging.String("output", outputPath),
			logging.Int("resolved", resolved),
			logging.Float64("coverage", coverage),
			logging.Duration("elapsed", time.Since(started)),
		)...)

	if opts.jsonOutput {
		return writeJSON(cmd, summary)
	}
	printAlignSummary(cmd, summary)
	return nil
}

// recordRun stores the run in the workspace history. History is advisory:
// failures are logged and do not fail the alignment itself.
func recordRun(cmd *cobra.Command, workspaceDir string, logger *slog.Logger, rec runstore.Record, scriptData []byte, transcriptPath string) string {
	rec.ScriptHash = runstore.Fingerprint(scriptData)
	hash, err := runstore.FingerprintFile(transcriptPath)
	if err != nil {
		logger.Warn("fingerprint transcript failed", logging.Args(logging.Error(err))...)
		return ""
	}
	rec.TranscriptHash = hash

	ws, err := workspace.Acquire(workspaceDir)
	if err != nil {
		logger.Warn("workspace unavailable, run not recorded", logging.Args(logging.Error(err))...)
		return ""
	}
	defer func() {
		if err := ws.Release(); err != nil {
			logger.Warn("release workspace lock failed", logging.Args(logging.Error(err))...)
		}
	}()

	store, err := runstore.Open(cmd.Context(), ws.RunsDBPath())
	if err != nil {
		logger.Warn("open run store failed", logging.Args(logging.Error(err))...)
		return ""
	}
	defer store.Close()

	saved, err := store.Save(cmd.Context(), rec)
	if err != nil {
		logger.Warn("record run failed", logging.Args(logging.Error(err))...)
		return ""
	}
	return saved.ID
}

func printAlignSummary(cmd *cobra.Command, summary alignSummary) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	mode := summary.Granularity
	if summary.Uniform {
		mode += " (uniform fallback)"
	}
	fmt.Fprintln(out, statusLine("Mode", mode, colorize))
	fmt.Fprintln(out, statusLine("Tokens", fmt.Sprintf("%d", summary.Tokens), colorize))
	fmt.Fprintln(out, statusLine("Coverage", fmt.Sprintf("%d/%d (%.0f%%)", summary.Resolved, summary.Tokens, summary.Coverage*100), colorize))
	fmt.Fprintln(out, statusLine("Timeline end", fmt.Sprintf("%.2fs", summary.TimelineEnd), colorize))
	fmt.Fprintln(out, statusLine("Output", summary.OutputPath, colorize))
}

func resolveFormat(flag, path string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(flag)) {
	case "whisper", "textgrid":
		return strings.ToLower(strings.TrimSpace(flag)), nil
	case "":
	default:
		return "", fmt.Errorf("unknown transcript format %q (expected whisper or textgrid)", flag)
	}
	if strings.EqualFold(filepath.Ext(path), ".textgrid") {
		return "textgrid", nil
	}
	return "whisper", nil
}

func resolveGranularity(flag, format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(flag)) {
	case "char", "token":
		return strings.ToLower(strings.TrimSpace(flag)), nil
	case "":
	default:
		return "", fmt.Errorf("unknown granularity %q (expected char or token)", flag)
	}
	// Forced-aligner TextGrids carry trustworthy word boundaries;
	// recognition output does not.
	if format == "textgrid" {
		return "token", nil
	}
	return "char", nil
}

func readTranscript(path, format string) ([]align.Fragment, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer file.Close()

	switch format {
	case "textgrid":
		fragments, _, err := transcript.ParseTextGrid(file)
		return fragments, err
	default:
		return transcript.ParseWhisperJSON(file)
	}
}

func timelineEnd(words []align.Word) float64 {
	if len(words) == 0 {
		return 0
	}
	return words[len(words)-1].End
}
