package config

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/maruel/natural"
	yaml "gopkg.in/yaml.v3"

	"twc/misc"
)

type ReporterConfig struct {
	Destination string `yaml:"destination" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
}

// Prepare creates initialized empty reporter.
func (conf *ReporterConfig) Prepare() (*Report, error) {
	r := &Report{entries: make(map[string]entry)}

	if f, err := os.Create(conf.Destination); err == nil {
		r.file = f
	} else if f, err = os.CreateTemp("", misc.GetAppName()+"-report.*.zip"); err == nil {
		r.file = f
	} else {
		return nil, fmt.Errorf("unable to create report: %w", err)
	}
	return r, nil
}

type entry struct {
	original string
	actual   string
	stamp    time.Time
	data     []byte
}

// Report accumulates files and data necessary to reproduce a compilation:
// configuration, theme sources, candidates and produced output.
// NOTE: presently not to be used concurrently!
type Report struct {
	entries map[string]entry
	file    *os.File
}

// Close finalizes debug report.
func (r *Report) Close() error {
	if r == nil || r.file == nil {
		// Ignore uninitialized cases to avoid checking in many places. This means no report has been requested.
		return nil
	}
	defer r.file.Close()
	return r.finalize()
}

// Name returns name of underlying file.
func (r *Report) Name() string {
	if r == nil || r.file == nil {
		return ""
	}
	if n, err := filepath.Abs(r.file.Name()); err == nil {
		return n
	}
	return r.file.Name()
}

// Store saves path to file to be put in the final archive later. File is
// read when report is finalized, so it may still be written to.
func (r *Report) Store(name, path string) {
	if r == nil {
		return
	}
	if old, exists := r.entries[name]; exists && old.original != path {
		// Somewhere I do not know what I am doing.
		panic(fmt.Sprintf("Attempt to overwrite file in the report for [%s]: was %s, now %s", name, old.original, path))
	}
	e := entry{original: path, actual: path}
	if p, err := filepath.Abs(path); err == nil {
		e.actual = p
	}
	r.entries[name] = e
}

// StoreData saves binary data to be put in the final archive later as a file
// under requested name. Repeated names are versioned with timestamps.
func (r *Report) StoreData(name string, data []byte) {
	if r == nil {
		return
	}
	if data == nil {
		data = []byte{}
	}
	e := entry{data: data, stamp: time.Now()}
	if _, exists := r.entries[name]; exists {
		name = fmt.Sprintf("%s-%d", name, e.stamp.UnixNano())
	}
	r.entries[name] = e
}

// StoreYAML serializes v and stores it as data.
func (r *Report) StoreYAML(name string, v any) error {
	if r == nil {
		return nil
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("unable to serialize %s for report: %w", name, err)
	}
	r.StoreData(name, data)
	return nil
}

type manifestEntry struct {
	Name   string    `yaml:"name"`
	Stamp  time.Time `yaml:"stamp"`
	Source string    `yaml:"source,omitempty"`
	Path   string    `yaml:"path,omitempty"`
	Size   int       `yaml:"size,omitempty"`
}

type manifest struct {
	Program string          `yaml:"program"`
	Version string          `yaml:"version"`
	Created time.Time       `yaml:"created"`
	Entries []manifestEntry `yaml:"entries"`
}

const manifestName = "MANIFEST.yaml"

// finalize writes archive: manifest first, then stored items in manifest
// order. Stored files which are absent or not regular by now are listed in
// manifest, but skipped.
func (r *Report) finalize() error {
	arc := zip.NewWriter(r.file)
	defer arc.Close()

	m := r.manifest(time.Now())
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("unable to prepare report manifest: %w", err)
	}
	if err := saveFile(arc, manifestName, m.Created, bytes.NewReader(data)); err != nil {
		return err
	}

	for _, me := range m.Entries {
		e := r.entries[me.Name]
		if e.data != nil {
			if err := saveFile(arc, me.Name, e.stamp, bytes.NewReader(e.data)); err != nil {
				return err
			}
			continue
		}
		if err := saveRegularFile(arc, me.Name, e.actual); err != nil {
			return err
		}
	}
	return nil
}

// manifest lists entries in natural order of their names.
func (r *Report) manifest(now time.Time) *manifest {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))

	m := &manifest{Program: misc.GetAppName(), Version: misc.GetVersion(), Created: now}
	for _, name := range names {
		e := r.entries[name]
		me := manifestEntry{Name: name, Stamp: e.stamp, Source: e.original, Size: len(e.data)}
		if e.actual != e.original {
			me.Path = e.actual
		}
		if me.Stamp.IsZero() {
			me.Stamp = now
		}
		m.Entries = append(m.Entries, me)
	}
	return m
}

func saveRegularFile(dst *zip.Writer, name, path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return saveFile(dst, name, info.ModTime(), f)
}

func saveFile(dst *zip.Writer, name string, t time.Time, src io.Reader) error {
	w, err := dst.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: t})
	if err != nil {
		return err
	}
	_, err = io.Copy(w, src)
	return err
}
