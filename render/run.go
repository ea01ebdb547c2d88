// Package render implements the render subcommand. It reads marked up text
// sources, resolves tags against configured styles and outputs the resulting
// attributed text.
package render

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"stext/attr"
	"stext/config"
	"stext/images"
	"stext/markup"
	"stext/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")

	if cmd.Args().Len() == 0 {
		return errors.New("no input source has been specified")
	}

	if env.Styles, err = env.Cfg.Styles.Build(log); err != nil {
		return fmt.Errorf("unable to build styles: %w", err)
	}

	var imgOpts []images.Option
	imgOpts = append(imgOpts, images.WithLogger(log))
	if dir := cmd.String("assets"); len(dir) > 0 {
		if fi, err := os.Stat(dir); err != nil || !fi.Mode().IsDir() {
			return fmt.Errorf("assets path is not a directory (%s)", dir)
		}
		imgOpts = append(imgOpts, images.WithAssets(os.DirFS(dir)))
	}

	resolver := markup.NewResolver(env.Styles,
		markup.WithLogger(log),
		markup.WithImages(images.NewResolver(imgOpts...)))

	outDir := cmd.String("out")
	if len(outDir) > 0 {
		if outDir, err = filepath.Abs(outDir); err != nil {
			return err
		}
		if err = os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("unable to create output directory: %w", err)
		}
	}

	srcs := cmd.Args().Slice()
	sort.Sort(natural.StringSlice(srcs))

	log.Info("Processing starting", zap.Strings("sources", srcs), zap.String("destination", outDir))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	for _, src := range srcs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := renderSource(ctx, resolver, src, outDir, cmd.Bool("json"), log); err != nil {
			log.Error("Unable to process source", zap.String("source", src), zap.Error(err))
		}
	}
	return nil
}

// renderSource resolves a single source. "-" reads markup from STDIN.
func renderSource(ctx context.Context, resolver *markup.Resolver, src, outDir string, asJSON bool, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	log.Info("Rendering starting", zap.String("from", src))
	defer func(start time.Time) {
		// NOTE: image decoding libraries are not always well behaved, when
		// multiple sources are being processed we do not want to stop.
		if r := recover(); r != nil {
			log.Error("Rendering ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("rendering panic: %v", r)
		} else {
			log.Info("Rendering completed", zap.Duration("elapsed", time.Since(start)))
		}
	}(time.Now())

	var (
		input []byte
		err   error
	)
	if src == "-" {
		if input, err = io.ReadAll(os.Stdin); err != nil {
			return fmt.Errorf("unable to read markup from stdin: %w", err)
		}
	} else if input, err = os.ReadFile(src); err != nil {
		return fmt.Errorf("unable to read markup source: %w", err)
	}

	buf, err := resolver.Resolve(ctx, string(input))
	if err != nil {
		// buffer is still usable, report and continue
		log.Warn("Markup was resolved with errors", zap.String("source", src), zap.Error(err))
	}

	if env.Rpt != nil {
		env.Rpt.StoreData(fmt.Sprintf("render/%s.txt", baseName(src)), []byte(markup.Dump(buf)))
	}

	data, err := formatBuffer(buf, asJSON)
	if err != nil {
		return err
	}

	if len(outDir) == 0 {
		_, err = os.Stdout.Write(data)
		return err
	}

	ext := ".txt"
	if asJSON {
		ext = ".json"
	}
	name := filepath.Join(outDir, config.CleanFileName(baseName(src))+ext)
	if err := os.WriteFile(name, data, 0644); err != nil {
		return fmt.Errorf("unable to write result: %w", err)
	}
	log.Debug("Result stored", zap.String("file", name))
	return nil
}

func baseName(src string) string {
	if src == "-" {
		return "stdin"
	}
	base := filepath.Base(src)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

type jsonRun struct {
	Start int               `json:"start"`
	End   int               `json:"end"`
	Attrs map[string]string `json:"attrs"`
}

type jsonResult struct {
	Text string    `json:"text"`
	Runs []jsonRun `json:"runs"`
}

func formatBuffer(buf *attr.Buffer, asJSON bool) ([]byte, error) {
	if !asJSON {
		return []byte(markup.Dump(buf)), nil
	}

	res := jsonResult{Text: buf.String(), Runs: []jsonRun{}}
	for _, run := range buf.Runs() {
		jr := jsonRun{Start: run.Start, End: run.End, Attrs: map[string]string{}}
		for _, k := range run.Attrs.Keys() {
			jr.Attrs[string(k)] = fmt.Sprintf("%v", run.Attrs[k])
		}
		res.Runs = append(res.Runs, jr)
	}
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("unable to marshal result: %w", err)
	}
	return append(data, '\n'), nil
}
