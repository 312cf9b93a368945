package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ivlev/gridmenu/internal/config"
	"github.com/ivlev/gridmenu/internal/engine"
	"github.com/ivlev/gridmenu/internal/logger"
	"github.com/ivlev/gridmenu/internal/scheduler"
	"github.com/ivlev/gridmenu/internal/script"
)

var buildVersion = "dev"

func main() {
	// Создаем нужные директории, если их нет
	dirs := []string{script.DefaultDir, "output"}
	for _, d := range dirs {
		os.MkdirAll(d, 0755)
	}

	scriptPtr := flag.String("script", "", "Путь к YAML-сценарию меню (по умолчанию: самый свежий файл в internal/scripts/)")
	scriptDirPtr := flag.String("script-dir", script.DefaultDir, "Папка со сценариями")
	previewPtr := flag.String("preview", "", "Путь к PNG-превью (если пусто, генерируется автоматически в output/)")
	saveScriptPtr := flag.Bool("save-script", false, "Сохранить копию сценария с отметкой времени")
	ticksPtr := flag.Int("ticks", 100, "Количество тиков в ручном режиме")
	realtimePtr := flag.Bool("realtime", false, "Крутить аниматоры по реальным часам")
	durationPtr := flag.Duration("duration", 5*time.Second, "Длительность прогона в реальном времени")
	tickPtr := flag.Duration("tick", scheduler.TickDuration, "Длительность одного тика")
	pagePtr := flag.Int("page", 1, "Начальная страница (с 1)")
	legacyPtr := flag.Bool("legacy-captions", false, "Режим старых клиентов: заголовок без цветов, только word_by_word")
	logFilePtr := flag.String("log-file", filepath.Join("output", "gridmenu.log"), "Файл журнала (ротация через lumberjack)")
	logLevelPtr := flag.String("log-level", "info", "Уровень журнала: debug, info, warn, error")
	statsPtr := flag.Bool("stats", false, "Показать отчет о прогоне и ресурсах")

	flag.Parse()

	previewPath := *previewPtr
	if previewPath == "" {
		timestamp := time.Now().Format("2006-01-02_15-04-05")
		previewPath = filepath.Join("output", fmt.Sprintf("menu_%s.png", timestamp))
	}

	cfg := &config.Config{
		ScriptPath:     *scriptPtr,
		ScriptDir:      *scriptDirPtr,
		PreviewPath:    previewPath,
		SaveScript:     *saveScriptPtr,
		Ticks:          *ticksPtr,
		Realtime:       *realtimePtr,
		Duration:       *durationPtr,
		TickDuration:   *tickPtr,
		StartPage:      *pagePtr,
		LegacyCaptions: *legacyPtr,
		LogFile:        *logFilePtr,
		LogLevel:       *logLevelPtr,
		ShowStats:      *statsPtr,
		BuildVersion:   buildVersion,
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[-] Ошибка параметров: %v", err)
	}

	closeLog := setupLogging(cfg)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	project := engine.NewMenuProject(cfg)
	if _, err := project.Run(ctx); err != nil {
		log.Fatalf("[-] Ошибка проекта: %v", err)
	}

	fmt.Printf("[+++] Успех! Результат: %s\n", cfg.PreviewPath)
}

// setupLogging направляет журнал в stderr и в файл с ротацией.
func setupLogging(cfg *config.Config) func() {
	level, _ := config.ParseLevel(cfg.LogLevel)
	rotating := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
	}
	w := io.MultiWriter(os.Stderr, rotating)
	logger.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	log.SetOutput(w)

	return func() {
		logger.SetLogger(nil)
		rotating.Close()
	}
}
