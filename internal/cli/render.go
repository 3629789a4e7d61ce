package cli

import (
	"bytes"
	"context"
	"time"

	"github.com/madsen/postscript-graph/pkg/cache"
	"github.com/madsen/postscript-graph/pkg/chart"
	"github.com/madsen/postscript-graph/pkg/observability"
	"github.com/madsen/postscript-graph/pkg/ps"
)

// Chart kinds accepted by the renderer and the HTTP API.
const (
	kindBar = "bar"
	kindXY  = "xy"
)

// artifactTTL bounds how long cached renders live. Rendering is
// deterministic, so the TTL only caps storage growth.
const artifactTTL = 30 * 24 * time.Hour

// renderParams carries everything that determines the rendered bytes,
// as exported primitives so it can be hashed into a stable cache key.
type renderParams struct {
	Kind    string
	Header  bool
	Config  fileConfig
	Heading string
	XTitle  string
	YTitle  string
}

// applyOverrides folds command-line flags over the file configuration.
func (p *renderParams) applyOverrides() fileConfig {
	fc := p.Config
	if p.Heading != "" {
		fc.Heading = p.Heading
	}
	if p.XTitle != "" {
		fc.X.Title = p.XTitle
	}
	if p.YTitle != "" {
		fc.Y.Title = p.YTitle
	}
	return fc
}

// render produces the PostScript artifact for one chart, consulting the
// cache first. It reports whether the artifact came from cache. The
// logger travels in ctx so both the commands and the HTTP handlers can
// attach their own.
func render(ctx context.Context, store cache.Cache, p renderParams, data []byte) ([]byte, bool, error) {
	logger := loggerFromContext(ctx)
	key := cache.ArtifactKey(p.Kind, p, data)

	if artifact, ok, err := store.Get(ctx, key); err == nil && ok {
		observability.Cache().OnCacheHit(ctx, "artifact")
		logger.Debugf("cache hit for %s chart", p.Kind)
		return artifact, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	artifact, err := renderFresh(ctx, p, data)
	if err != nil {
		return nil, false, err
	}

	if err := store.Set(ctx, key, artifact, artifactTTL); err != nil {
		logger.Warnf("cache write failed: %v", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "artifact", len(artifact))
	}
	return artifact, false, nil
}

// renderFresh builds and renders the chart without cache involvement.
func renderFresh(ctx context.Context, p renderParams, data []byte) ([]byte, error) {
	fc := p.applyOverrides()
	cfg := fc.chartConfig()

	doc, err := ps.New(fc.docOptions())
	if err != nil {
		return nil, err
	}

	layoutStart := time.Now()
	var renderable interface{ Render() error }
	var seriesCount int

	switch p.Kind {
	case kindXY:
		series, err := chart.ReadXYCSV(bytes.NewReader(data), p.Header)
		if err != nil {
			return nil, err
		}
		seriesCount = len(series)
		observability.Render().OnLayoutStart(ctx, p.Kind, seriesCount)
		c, err := chart.NewXY(doc, cfg, series, nil)
		observability.Render().OnLayoutComplete(ctx, p.Kind, time.Since(layoutStart), err)
		if err != nil {
			return nil, err
		}
		renderable = c
	default:
		labels, series, err := chart.ReadBarCSV(bytes.NewReader(data), p.Header)
		if err != nil {
			return nil, err
		}
		seriesCount = len(series)
		observability.Render().OnLayoutStart(ctx, p.Kind, seriesCount)
		c, err := chart.NewBar(doc, cfg, labels, series, nil)
		observability.Render().OnLayoutComplete(ctx, p.Kind, time.Since(layoutStart), err)
		if err != nil {
			return nil, err
		}
		renderable = c
	}

	renderStart := time.Now()
	observability.Render().OnRenderStart(ctx, p.Kind)
	err = renderable.Render()
	var artifact []byte
	if err == nil {
		artifact = doc.Bytes()
	}
	observability.Render().OnRenderComplete(ctx, p.Kind, len(artifact), time.Since(renderStart), err)
	if err != nil {
		return nil, err
	}
	return artifact, nil
}
