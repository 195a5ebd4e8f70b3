package main

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/sghaida/rootfind/grid"
)

// emit writes v as YAML to the --out file, or to stdout when none is set.
func (a *app) emit(v any) error {
	var buf bytes.Buffer
	if err := encodeYAML(&buf, v); err != nil {
		return err
	}
	if a.outPath == "" {
		_, err := a.stdout.Write(buf.Bytes())
		return err
	}
	if err := writeFileAtomic(a.outPath, buf.Bytes(), 0o644); err != nil {
		return err
	}
	a.log.WithField("path", a.outPath).Info("report written")
	return nil
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// writeTable writes the evaluation table as CSV with header x,f_x.
func writeTable(w io.Writer, t grid.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "f_x"}); err != nil {
		return err
	}
	for i := range t.X {
		rec := []string{
			strconv.FormatFloat(t.X[i], 'g', -1, 64),
			strconv.FormatFloat(t.Y[i], 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// saveTable writes the table to path atomically.
func saveTable(path string, t grid.Table) error {
	var buf bytes.Buffer
	if err := writeTable(&buf, t); err != nil {
		return err
	}
	return writeFileAtomic(path, buf.Bytes(), 0o644)
}

// writeFileAtomic stages data next to path and renames it into place, so a reader sees
// either the old file or the complete new one.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	staged := f.Name()

	_, err = f.Write(data)
	if err == nil {
		err = f.Chmod(perm)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(staged, path)
	}
	if err != nil {
		_ = os.Remove(staged)
	}
	return err
}
