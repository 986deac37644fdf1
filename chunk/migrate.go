package chunk

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/Tnze/go-mc/save/region"
	"golang.org/x/sync/errgroup"

	"github.com/xmdhs/datafixer/config"
	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/log"
	"github.com/xmdhs/datafixer/registry"
	"github.com/xmdhs/datafixer/types/nbt"
)

var ErrForeignValue = errors.New("converter returned a non nbt value")

// Stats counts the chunks seen by a migration.
type Stats struct {
	Chunks    int64
	Converted int64
	Stamped   int64
	Unchanged int64
	Failed    int64
}

func (s *Stats) add(o Stats) {
	atomic.AddInt64(&s.Chunks, o.Chunks)
	atomic.AddInt64(&s.Converted, o.Converted)
	atomic.AddInt64(&s.Stamped, o.Stamped)
	atomic.AddInt64(&s.Unchanged, o.Unchanged)
	atomic.AddInt64(&s.Failed, o.Failed)
}

type Migrator struct {
	reg    *registry.Registry
	cfg    config.Config
	logger log.Log
}

func NewMigrator(cfg config.Config, reg *registry.Registry, logger log.Log) *Migrator {
	return &Migrator{reg: reg, cfg: cfg, logger: logger}
}

// TypeForDir picks the chunk type stored in a region folder.
func (m *Migrator) TypeForDir(dir string) *datafix.MapDataType {
	switch filepath.Base(dir) {
	case "entities":
		return m.reg.EntityChunk
	case "poi":
		return m.reg.PoiChunk
	default:
		return m.reg.Chunk
	}
}

// MigrateWorld migrates every configured folder of the world in turn.
func (m *Migrator) MigrateWorld(ctx context.Context) (Stats, error) {
	var total Stats
	for _, d := range m.cfg.Dirs {
		dir := filepath.Join(m.cfg.World, d)
		if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
			m.logger.Debug("skip missing dir", log.String("dir", dir))
			continue
		}
		s, err := m.MigrateDir(ctx, dir)
		total.add(s)
		if err != nil {
			return total, fmt.Errorf("MigrateWorld: %w", err)
		}
	}
	return total, nil
}

// MigrateDir migrates every .mca file of dir, at most cfg.Workers at once.
func (m *Migrator) MigrateDir(ctx context.Context, dir string) (Stats, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Stats{}, fmt.Errorf("MigrateDir: %w", err)
	}

	var total Stats
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.cfg.Workers)
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".mca" {
			continue
		}
		path := filepath.Join(dir, name)
		g.Go(func() error {
			s, err := m.MigrateRegion(ctx, path)
			total.add(s)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return total, fmt.Errorf("MigrateDir: %w", err)
	}
	return total, nil
}

// MigrateRegion converts every chunk of one region file to the target
// version. A chunk that fails is logged and left as it was.
func (m *Migrator) MigrateRegion(ctx context.Context, path string) (Stats, error) {
	start := time.Now()
	t := m.TypeForDir(filepath.Dir(path))
	l := m.logger.With(log.String("file", path), log.String("type", t.Name()))

	rg, err := region.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("MigrateRegion: %w", err)
	}
	defer rg.Close()

	var s Stats
	for x := 0; x < 32; x++ {
		for z := 0; z < 32; z++ {
			if err := ctx.Err(); err != nil {
				return s, fmt.Errorf("MigrateRegion: %w", err)
			}
			if !rg.ExistSector(x, z) {
				continue
			}
			s.Chunks++
			raw, err := rg.ReadSector(x, z)
			if err != nil {
				s.Failed++
				l.Warn("read chunk", log.Int("x", x), log.Int("z", z), log.Error(err))
				continue
			}
			out, res, err := m.MigrateSector(t, raw)
			if err != nil {
				s.Failed++
				l.Warn("migrate chunk", log.Int("x", x), log.Int("z", z), log.Error(err))
				continue
			}
			switch res {
			case OutcomeCurrent:
				s.Unchanged++
			case OutcomeStamped:
				s.Stamped++
			case OutcomeConverted:
				s.Converted++
			}
			if out == nil || m.cfg.DryRun {
				continue
			}
			if err := rg.WriteSector(x, z, out); err != nil {
				return s, fmt.Errorf("MigrateRegion: chunk %d %d: %w", x, z, err)
			}
		}
	}
	l.Info("region done",
		log.Int64("chunks", s.Chunks),
		log.Int64("converted", s.Converted),
		log.Int64("stamped", s.Stamped),
		log.Int64("failed", s.Failed),
		log.Duration("took", time.Since(start)),
	)
	return s, nil
}

// Outcome says what MigrateSector did to a chunk.
type Outcome uint8

const (
	// OutcomeCurrent: the chunk is already at or past the target.
	OutcomeCurrent Outcome = iota
	// OutcomeStamped: no rule changed the tree, only DataVersion moves on.
	OutcomeStamped
	// OutcomeConverted: at least one rule changed the tree.
	OutcomeConverted
)

// MigrateSector converts one compressed sector with t. out holds the sector
// to write back and is nil when there is nothing to write: the chunk is
// current, or it is stamp only and cfg.SkipStampOnly is set.
func (m *Migrator) MigrateSector(t *datafix.MapDataType, raw []byte) (out []byte, res Outcome, err error) {
	b, err := mcDecompress(raw)
	if err != nil {
		return nil, OutcomeCurrent, fmt.Errorf("MigrateSector: %w", err)
	}
	c, err := nbt.Decode(b)
	if err != nil {
		return nil, OutcomeCurrent, fmt.Errorf("MigrateSector: %w", err)
	}

	from := m.cfg.DefaultSource
	if v, ok := c.GetInt("DataVersion"); ok && v > 0 {
		from = datafix.V(uint32(v))
	}
	if !from.Less(m.cfg.Target) {
		return nil, OutcomeCurrent, nil
	}

	before := Digest(c)
	conv, ok := t.Convert(c, from, m.cfg.Target).(*nbt.Compound)
	if !ok {
		return nil, OutcomeCurrent, fmt.Errorf("MigrateSector: %w", ErrForeignValue)
	}
	res = OutcomeConverted
	if Digest(conv) == before {
		res = OutcomeStamped
		if m.cfg.SkipStampOnly {
			return nil, res, nil
		}
	}
	conv.SetInt("DataVersion", int32(m.cfg.Target.Version))

	b, err = nbt.Encode(conv)
	if err != nil {
		return nil, res, fmt.Errorf("MigrateSector: %w", err)
	}
	out, err = mcCompress(b)
	if err != nil {
		return nil, res, fmt.Errorf("MigrateSector: %w", err)
	}
	return out, res, nil
}
