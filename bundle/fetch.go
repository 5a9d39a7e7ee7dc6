package bundle

import (
	"context"
	"net/url"
	"os"

	"github.com/hashicorp/go-getter"
	"go.uber.org/zap"

	"github.com/dock-labs/rdf2020soundness/errors"
)

// Fetch resolves src — a local path, an http(s):// URL, or a git::
// URL — into dir using go-getter, so a remote rule bundle can be
// pulled down before it's loaded. A local src is a no-op: Fetch never
// copies a local source, whether or not it is dir.
func Fetch(ctx context.Context, src, dir string, log *zap.SugaredLogger) error {
	if src == "" {
		return errors.New("bundle source is empty")
	}

	pwd, err := os.Getwd()
	if err != nil {
		pwd = "."
	}

	detected, err := getter.Detect(src, pwd, getter.Detectors)
	if err != nil {
		return errors.Wrapf(err, "detect bundle source %s", src)
	}

	parsed, err := url.Parse(detected)
	if err != nil {
		return errors.Wrapf(err, "parse detected bundle source %s", detected)
	}

	if parsed.Scheme == "" || parsed.Scheme == "file" {
		// Local source: the caller already has it on disk, nothing to fetch.
		return nil
	}

	if log != nil {
		log.Infow("fetching rule bundle", "source", src, "detected", detected, "dest", dir)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create bundle destination %s", dir)
	}

	client := &getter.Client{
		Ctx:     ctx,
		Src:     detected,
		Dst:     dir,
		Mode:    getter.ClientModeDir,
		Getters: getter.Getters,
	}

	if err := client.Get(); err != nil {
		return errors.Wrapf(err, "fetch bundle %s", src)
	}
	return nil
}
