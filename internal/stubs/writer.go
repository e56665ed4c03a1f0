package stubs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	dirPerm    = 0o755
	filePerm   = 0o644
	tempPrefix = ".chunkgen-"
)

// replaceFile moves a staged file over its target.
var replaceFile = os.Rename

// staged is a target whose new content sits in a temp file next to it.
type staged struct {
	target  string
	tmp     string
	old     []byte
	existed bool
	renamed bool
}

// WriteTargets writes content to every target or to none. All targets are
// staged to temp files in their own directories first; the temp files
// replace the targets only once every stage succeeded. If a replacement
// fails, targets already replaced get their previous content back. Temp
// files never outlive the call.
func WriteTargets(ctx context.Context, content []byte, targets ...string) (err error) {
	if len(targets) == 0 {
		return errors.New("no stub targets")
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	var stages []*staged

	defer func() {
		for _, s := range stages {
			if s.renamed {
				continue
			}

			if rmErr := os.Remove(s.tmp); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
				err = errors.Join(err, fmt.Errorf("removing %s: %w", s.tmp, rmErr))
			}
		}
	}()

	for _, target := range targets {
		s, err := stage(target, content)
		if err != nil {
			return fmt.Errorf("staging %s: %w", target, err)
		}

		stages = append(stages, s)

		if err := ctx.Err(); err != nil {
			return err
		}
	}

	for i, s := range stages {
		if err := replaceFile(s.tmp, s.target); err != nil {
			err = fmt.Errorf("replacing %s: %w", s.target, err)

			return errors.Join(err, rollback(stages[:i]))
		}

		s.renamed = true
	}

	return nil
}

func stage(target string, content []byte) (*staged, error) {
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, err
	}

	s := &staged{target: target}

	old, err := os.ReadFile(target)
	switch {
	case err == nil:
		s.old = old
		s.existed = true
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, err
	}

	tmp, err := os.CreateTemp(dir, tempPrefix+filepath.Base(target)+"-*")
	if err != nil {
		return nil, err
	}

	s.tmp = tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(s.tmp)

		return nil, err
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(s.tmp)

		return nil, err
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(s.tmp)

		return nil, err
	}

	_ = os.Chmod(s.tmp, filePerm)

	return s, nil
}

// rollback restores targets that were already replaced.
func rollback(done []*staged) error {
	var errs []error

	for _, s := range done {
		var err error
		if s.existed {
			err = os.WriteFile(s.target, s.old, filePerm)
		} else {
			err = os.Remove(s.target)
		}

		if err != nil {
			errs = append(errs, fmt.Errorf("restoring %s: %w", s.target, err))
		}
	}

	return errors.Join(errs...)
}
