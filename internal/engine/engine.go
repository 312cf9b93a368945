package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/gridmenu/internal/animation"
	"github.com/ivlev/gridmenu/internal/config"
	"github.com/ivlev/gridmenu/internal/logger"
	"github.com/ivlev/gridmenu/internal/pagination"
	"github.com/ivlev/gridmenu/internal/preview"
	"github.com/ivlev/gridmenu/internal/scheduler"
	"github.com/ivlev/gridmenu/internal/script"
	"github.com/ivlev/gridmenu/internal/surface"
	"github.com/ivlev/gridmenu/internal/system"
)

type MenuProject struct {
	Config   *config.Config
	Script   *script.Script
	Grid     *surface.Grid
	Pages    *pagination.Pagination
	Content  []*animation.ContentAnimator
	Captions []*animation.CaptionAnimator

	slotWrites    atomic.Int64
	captionWrites atomic.Int64
}

// RunStats - итог одного прогона.
type RunStats struct {
	Elapsed       time.Duration
	Ticks         int
	SlotWrites    int64
	CaptionWrites int64
	Running       int
}

func NewMenuProject(cfg *config.Config) *MenuProject {
	return &MenuProject{Config: cfg}
}

// Load читает сценарий меню, раскладывает текущую страницу на сетку и
// собирает аниматоры. Аниматоры не запускаются.
func (p *MenuProject) Load() error {
	path := p.Config.ScriptPath
	if path == "" {
		dir := p.Config.ScriptDir
		if dir == "" {
			dir = script.DefaultDir
		}
		latest, err := script.FindLatestScript(dir)
		if err != nil {
			return err
		}
		path = latest
		p.Config.ScriptPath = path
		fmt.Printf("[*] Выбран сценарий: %s\n", path)
	}

	s, err := script.ReadScript(path)
	if err != nil {
		return fmt.Errorf("ошибка чтения сценария: %w", err)
	}
	p.Script = s

	p.Pages, err = s.Paginate()
	if err != nil {
		return fmt.Errorf("ошибка пагинации: %w", err)
	}
	for page := 1; page < p.Config.StartPage; page++ {
		p.Pages.Next()
	}
	if p.Pages.Page() != p.Config.StartPage {
		fmt.Printf("[!] Страница %d недоступна, показана последняя: %d\n", p.Config.StartPage, p.Pages.Page())
	}

	p.Grid = surface.NewGrid(
		surface.WithCaption(s.Title),
		surface.WithObserver(p.count),
	)
	p.Grid.Fill(p.Pages.Layout(p.Pages.PageIndex()))

	if p.Content, err = s.ContentAnimators(p.Grid); err != nil {
		return err
	}
	if p.Captions, err = s.CaptionAnimators(p.Grid, p.Config.LegacyCaptions); err != nil {
		return err
	}
	return nil
}

func (p *MenuProject) count(c surface.Change) {
	switch c.Kind {
	case surface.SlotChanged:
		p.slotWrites.Add(1)
	case surface.CaptionChanged:
		p.captionWrites.Add(1)
	}
}

// Run загружает сценарий, запускает аниматоры и крутит часы: вручную на
// Config.Ticks тиков или в реальном времени на Config.Duration.
func (p *MenuProject) Run(ctx context.Context) (RunStats, error) {
	startTime := time.Now()
	if err := p.Load(); err != nil {
		return RunStats{}, err
	}
	defer p.Grid.Close()

	fmt.Println("--- [PROJECT: GRID MENU] ---")
	fmt.Printf("[*] Сценарий: %s | Страница: %d/%d\n", p.Config.ScriptPath, p.Pages.Page(), p.Pages.LastPage())
	fmt.Printf("[*] Аниматоры: %d слотов, %d заголовков\n", len(p.Content), len(p.Captions))
	fmt.Println("----------------------------")
	// Сбрасываем счетчики: начальная раскладка не считается
	p.slotWrites.Store(0)
	p.captionWrites.Store(0)

	var ticks int
	var err error
	if p.Config.Realtime {
		ticks, err = p.runRealtime(ctx)
	} else {
		ticks, err = p.runManual()
	}
	if err != nil {
		return RunStats{}, err
	}

	stats := RunStats{
		Elapsed:       time.Since(startTime),
		Ticks:         ticks,
		SlotWrites:    p.slotWrites.Load(),
		CaptionWrites: p.captionWrites.Load(),
		Running:       len(p.Grid.Animators()),
	}

	if p.Config.PreviewPath != "" {
		if err := os.MkdirAll(filepath.Dir(p.Config.PreviewPath), 0755); err != nil {
			return stats, err
		}
		if err := preview.WritePNG(p.Config.PreviewPath, p.Grid.Snapshot()); err != nil {
			return stats, fmt.Errorf("ошибка записи превью: %w", err)
		}
		fmt.Printf("[*] Превью сохранено: %s\n", p.Config.PreviewPath)
	}

	if p.Config.SaveScript {
		dir := p.Config.ScriptDir
		if dir == "" {
			dir = script.DefaultDir
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return stats, err
		}
		out := script.GenerateScriptPath(dir)
		if err := script.WriteScript(p.Script, out); err != nil {
			return stats, fmt.Errorf("ошибка сохранения сценария: %w", err)
		}
		fmt.Printf("[*] Сценарий сохранен: %s\n", out)
	}

	if p.Config.ShowStats {
		fmt.Printf(
			"--- [RUN REPORT] ---\n"+
				"Build: %s\n"+
				"Total Time: %.2fs\n"+
				"Ticks: %d\n"+
				"Slot writes: %d | Caption writes: %d\n"+
				"Animators still running: %d\n"+
				"--------------------\n",
			p.Config.BuildVersion, stats.Elapsed.Seconds(), stats.Ticks,
			stats.SlotWrites, stats.CaptionWrites, stats.Running,
		)
		report, err := system.CollectReport()
		if err != nil {
			fmt.Printf("[!] Не удалось собрать статистику процесса: %v\n", err)
		} else {
			fmt.Print(report)
		}
	}

	return stats, nil
}

func (p *MenuProject) start(sched scheduler.Scheduler) error {
	for _, a := range p.Content {
		if err := a.Animate(sched); err != nil {
			return err
		}
	}
	for _, a := range p.Captions {
		if err := a.Animate(sched); err != nil {
			return err
		}
	}
	return nil
}

func (p *MenuProject) runManual() (int, error) {
	clock := scheduler.NewManual()
	if err := p.start(clock); err != nil {
		return 0, err
	}
	clock.Advance(p.Config.Ticks)
	logger.Logger().Debug("manual run finished", "ticks", clock.Now(), "pending", clock.Pending())
	return clock.Now(), nil
}

func (p *MenuProject) runRealtime(ctx context.Context) (int, error) {
	started := time.Now()
	ctx, cancel := context.WithTimeout(ctx, p.Config.Duration)
	defer cancel()

	ticker := scheduler.NewTicker(ctx, scheduler.WithTickDuration(p.Config.TickDuration))
	if err := p.start(ticker); err != nil {
		ticker.Stop()
		return 0, err
	}

	var g errgroup.Group
	g.Go(func() error {
		<-ctx.Done()
		ticker.Stop()
		return nil
	})

	// Все аниматоры могут закончиться раньше таймаута
	g.Go(func() error {
		err := ticker.Wait()
		cancel()
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return int(time.Since(started) / p.Config.TickDuration), nil
}
