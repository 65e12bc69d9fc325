// Package manifest is the inspection layer of glue collection. It reads HCL
// glue manifests that attach markers to methods of compiled-in owner types
// and produces the (callable, marker) pairs to bind.
//
// A manifest looks like:
//
//	glue "belly.Steps" {
//	  given "HaveCukes" {
//	    expression = "I have {int} cukes in my belly"
//	  }
//	  after_step "Snapshot" {
//	    tags  = "@slow"
//	    order = 5
//	  }
//	}
//
// Each block label names a method of the owner; the block type names the
// marker and its arguments configure it.
package manifest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/gluebind/internal/callable"
	"github.com/vk/gluebind/internal/ctxlog"
	"github.com/vk/gluebind/internal/fsutil"
	"github.com/vk/gluebind/internal/marker"
)

// Extension is the file extension of glue manifests.
const Extension = ".hcl"

// Binding is one discovered (callable, marker) pair.
type Binding struct {
	Callable callable.Callable
	Marker   marker.Marker
	// Source is the manifest position of the marker block.
	Source string
}

// Loader reads glue manifests and resolves their owners through a catalog.
type Loader struct {
	catalog *callable.Catalog
}

// NewLoader creates a loader resolving owners through catalog.
func NewLoader(catalog *callable.Catalog) *Loader {
	return &Loader{catalog: catalog}
}

// Load reads every manifest under paths. Paths may be files or directories;
// paths that do not exist are skipped. Bindings are returned in file
// discovery order, then in block order.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]Binding, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Manifest loader started.", "path_count", len(paths))

	files, err := l.findManifests(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered manifest files.", "count", len(files))

	parser := hclparse.NewParser()
	var bindings []Binding
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read manifest %s: %w", file, err)
		}
		found, err := l.parse(ctx, parser, file, src)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, found...)
	}

	logger.Debug("Manifest loading complete.", "files", len(files), "bindings", len(bindings))
	return bindings, nil
}

// Parse reads a single manifest from memory.
func (l *Loader) Parse(ctx context.Context, filename string, src []byte) ([]Binding, error) {
	return l.parse(ctx, hclparse.NewParser(), filename, src)
}

func (l *Loader) parse(ctx context.Context, parser *hclparse.Parser, filename string, src []byte) ([]Binding, error) {
	logger := ctxlog.FromContext(ctx).With("file", filename)

	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", filename, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", filename, diags)
	}

	var bindings []Binding
	for _, g := range root.Glue {
		content, diags := g.Body.Content(glueBodySchema)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode glue %q in %s: %w", g.Owner, filename, diags)
		}

		for _, block := range content.Blocks {
			method := block.Labels[0]
			c, err := l.catalog.Resolve(g.Owner, method)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", block.DefRange, err)
			}
			m, err := decodeMarker(ctx, block)
			if err != nil {
				return nil, err
			}
			logger.Debug("Discovered glue method.", "owner", g.Owner, "method", method, "marker", block.Type)
			bindings = append(bindings, Binding{Callable: c, Marker: m, Source: block.DefRange.String()})
		}
	}
	return bindings, nil
}

// findManifests flattens paths into a de-duplicated list of manifest files.
func (l *Loader) findManifests(paths []string) ([]string, error) {
	var all []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			all = append(all, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			if filepath.Ext(path) == Extension {
				add(path)
			}
			continue
		}

		files, err := fsutil.FindFilesByExtension(path, Extension)
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", path, err)
		}
		for _, f := range files {
			add(f)
		}
	}
	return all, nil
}
