// Package pack builds distributable zip archives from plugin directories.
//
// Packaging is a validation gate followed by a filtered file-tree copy: the
// plugin is validated first (unless explicitly skipped), excluded paths are
// dropped, and the remaining files land in a zip rooted under the plugin
// name alongside a generated manifest.
package pack

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/dotcommander/ccplug/internal/validate"
	"gopkg.in/yaml.v3"
)

// manifestName is the manifest entry written into each archive.
const manifestName = "manifest.yaml"

// Options configures a packaging run.
type Options struct {
	// OutputDir receives the archive; the working directory when empty.
	OutputDir string
	// SkipValidation packages the plugin even when validation would fail.
	SkipValidation bool
	// Force overwrites an existing archive.
	Force bool
	// Exclude lists extra path-segment patterns beyond DefaultExcludes.
	Exclude []string
}

// Result describes a created archive.
type Result struct {
	ArchivePath string
	Files       int
	Size        int64
}

// ValidationFailedError is returned when the validation gate rejects the
// plugin; it carries the report so the caller can render it.
type ValidationFailedError struct {
	Report *validate.Report
}

func (e *ValidationFailedError) Error() string {
	errors, _, _ := e.Report.Counts()
	return fmt.Sprintf("validation failed with %d error(s)", errors)
}

// manifest is the metadata document embedded in each archive.
type manifest struct {
	Name       string    `yaml:"name"`
	CreatedAt  time.Time `yaml:"created_at"`
	Files      int       `yaml:"files"`
	Components []string  `yaml:"components"`
}

// Create packages the plugin at root into <basename>.zip. Validation runs
// first unless opts.SkipValidation is set; a failing report aborts with a
// *ValidationFailedError and no archive is produced.
func Create(root string, opts Options) (*Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("plugin path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("plugin path is not a directory: %s", root)
	}

	if !opts.SkipValidation {
		report := validate.New(root).Validate()
		if !report.Passed() {
			return nil, &ValidationFailedError{Report: report}
		}
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		if outputDir, err = os.Getwd(); err != nil {
			return nil, err
		}
	}

	pluginName := filepath.Base(absOrSelf(root))
	archivePath := filepath.Join(outputDir, pluginName+".zip")
	if _, err := os.Stat(archivePath); err == nil && !opts.Force {
		return nil, fmt.Errorf("package already exists: %s (use --force to overwrite)", archivePath)
	}

	patterns := append(append([]string{}, DefaultExcludes...), opts.Exclude...)

	files, err := collectFiles(root, patterns)
	if err != nil {
		return nil, err
	}

	if err := writeArchive(archivePath, root, pluginName, files); err != nil {
		os.Remove(archivePath)
		return nil, err
	}

	archiveInfo, err := os.Stat(archivePath)
	if err != nil {
		return nil, err
	}

	return &Result{
		ArchivePath: archivePath,
		Files:       len(files),
		Size:        archiveInfo.Size(),
	}, nil
}

// collectFiles returns the root-relative files to package, exclusions
// applied, in walk order.
func collectFiles(root string, patterns []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if excluded(rel, patterns) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.IsDir() {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning plugin files: %w", err)
	}
	return files, nil
}

// writeArchive creates the zip with every entry rooted under pluginName,
// then appends the generated manifest unless the plugin ships its own.
func writeArchive(archivePath, root, pluginName string, files []string) error {
	out, err := os.Create(archivePath)
	if err != nil {
		return fmt.Errorf("error creating package: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)

	hasOwnManifest := false
	for _, rel := range files {
		if rel == manifestName {
			hasOwnManifest = true
		}
		if err := addFile(zw, filepath.Join(root, rel), pluginName+"/"+filepath.ToSlash(rel)); err != nil {
			return err
		}
	}

	if !hasOwnManifest {
		if err := addManifest(zw, root, pluginName, len(files)); err != nil {
			return err
		}
	}

	return zw.Close()
}

func addFile(zw *zip.Writer, path, entryName string) error {
	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", path, err)
	}
	defer in.Close()

	w, err := zw.Create(entryName)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, in)
	return err
}

func addManifest(zw *zip.Writer, root, pluginName string, fileCount int) error {
	presence := validate.DetectComponents(root)
	var components []string
	if presence.MCP {
		components = append(components, "mcp-server")
	}
	if presence.Skill {
		components = append(components, "skill")
	}
	if presence.Commands {
		components = append(components, "commands")
	}

	data, err := yaml.Marshal(manifest{
		Name:       pluginName,
		CreatedAt:  time.Now().UTC(),
		Files:      fileCount,
		Components: components,
	})
	if err != nil {
		return fmt.Errorf("error building manifest: %w", err)
	}

	w, err := zw.Create(pluginName + "/" + manifestName)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func absOrSelf(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
