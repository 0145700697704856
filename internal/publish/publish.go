// Package publish uploads a finished asset tree to S3 so the content
// package can be served to tour devices.
package publish

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"github.com/writewhisker/tourkit/internal/catalog"
	"github.com/writewhisker/tourkit/internal/report"
	"github.com/writewhisker/tourkit/internal/story"
)

// PutObjectAPI is the slice of the S3 client the publisher uses.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher uploads the asset tree, the story file, and a run manifest to
// an S3 bucket under a common key prefix.
type Publisher struct {
	Catalog   *catalog.Catalog
	AssetsDir string
	IconsDir  string
	StoryPath string

	Bucket string
	Prefix string
	Client PutObjectAPI
	Out    io.Writer
}

type uploadItem struct {
	path string // local file path
	rel  string // key below the prefix, forward slashes
}

// Run validates the story, uploads every file under the asset tree plus
// the story itself, then writes a manifest describing the run. Per-file
// upload failures are logged and counted; the batch continues.
func (p *Publisher) Run(ctx context.Context) (*report.Tally, error) {
	st, err := story.Load(p.StoryPath)
	if err != nil {
		return nil, err
	}
	if err := st.Validate(); err != nil {
		return nil, fmt.Errorf("story not publishable: %w", err)
	}

	items, err := p.collect()
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(p.Out, "📦 Publishing %s to S3\n", p.Catalog.Name)
	fmt.Fprintln(p.Out, strings.Repeat("=", 60))
	fmt.Fprintf(p.Out, "Destination: s3://%s/%s/\n\n", p.Bucket, p.Prefix)

	tally := report.NewTally("publish", len(items))
	manifest := NewManifest(p.Catalog.Name)

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return tally, err
		}
		entry, err := p.uploadFile(ctx, item)
		if err != nil {
			log.Warn().Err(err).Str("key", p.key(item.rel)).Msg("Upload failed")
			fmt.Fprintf(p.Out, "❌ Failed: %s - %v\n", item.rel, err)
			tally.Fail(item.rel)
			continue
		}
		fmt.Fprintf(p.Out, "✅ Uploaded: %s (%s)\n", item.rel, report.FormatSize(entry.SizeBytes))
		tally.Success()
		manifest.Files = append(manifest.Files, entry)
	}

	if err := p.uploadManifest(ctx, manifest); err != nil {
		return tally, err
	}

	fmt.Fprintln(p.Out)
	fmt.Fprintln(p.Out, strings.Repeat("=", 60))
	fmt.Fprintf(p.Out, "✅ Uploaded: %d files\n", tally.Succeeded())
	if tally.Failed() > 0 {
		fmt.Fprintf(p.Out, "❌ Failed: %d files\n", tally.Failed())
	}
	fmt.Fprintf(p.Out, "🧾 Manifest: s3://%s/%s\n", p.Bucket, p.key(ManifestName))

	tally.Log()
	return tally, nil
}

// collect gathers the story, the asset tree, and the icons into a stable
// upload order. A missing icons directory is tolerated; a missing asset
// tree is not.
func (p *Publisher) collect() ([]uploadItem, error) {
	items := []uploadItem{{path: p.StoryPath, rel: filepath.Base(p.StoryPath)}}

	assets, err := walkTree(p.AssetsDir, "assets")
	if err != nil {
		return nil, fmt.Errorf("failed to walk asset tree: %w", err)
	}
	items = append(items, assets...)

	icons, err := walkTree(p.IconsDir, "icons")
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn().Str("dir", p.IconsDir).Msg("Icons directory missing, skipping")
		} else {
			return nil, fmt.Errorf("failed to walk icons: %w", err)
		}
	}
	items = append(items, icons...)

	return items, nil
}

// walkTree lists the regular files under dir, keyed below keyBase.
// Dotfiles are excluded; WalkDir's lexical order keeps runs deterministic.
func walkTree(dir, keyBase string) ([]uploadItem, error) {
	var items []uploadItem
	err := filepath.WalkDir(dir, func(fpath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		rel, err := filepath.Rel(dir, fpath)
		if err != nil {
			return err
		}
		items = append(items, uploadItem{path: fpath, rel: keyBase + "/" + filepath.ToSlash(rel)})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (p *Publisher) key(rel string) string {
	if p.Prefix == "" {
		return rel
	}
	return p.Prefix + "/" + rel
}

func (p *Publisher) uploadFile(ctx context.Context, item uploadItem) (ManifestFile, error) {
	data, err := os.ReadFile(item.path)
	if err != nil {
		return ManifestFile{}, fmt.Errorf("failed to read %s: %w", item.path, err)
	}
	key := p.key(item.rel)
	sum := sha256.Sum256(data)
	contentType := ContentType(item.path)

	log.Debug().
		Str("key", key).
		Str("contentType", contentType).
		Int("bytes", len(data)).
		Msg("Uploading to S3")

	_, err = p.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &p.Bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
		Tagging:     ProjectTagging(),
	})
	if err != nil {
		return ManifestFile{}, fmt.Errorf("failed to upload %s to S3: %w", key, err)
	}

	return ManifestFile{
		Key:       key,
		SizeBytes: int64(len(data)),
		SHA256:    hex.EncodeToString(sum[:]),
	}, nil
}

func (p *Publisher) uploadManifest(ctx context.Context, m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	key := p.key(ManifestName)
	contentType := "application/json"

	_, err = p.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &p.Bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
		Tagging:     ProjectTagging(),
	})
	if err != nil {
		return fmt.Errorf("failed to upload manifest to S3: %w", err)
	}

	log.Info().Str("key", key).Int("files", len(m.Files)).Msg("Manifest uploaded")
	return nil
}
