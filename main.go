package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ByLCY/faktura/config"
	"github.com/ByLCY/faktura/export"
	"github.com/ByLCY/faktura/format"
	"github.com/ByLCY/faktura/invoice"
	"github.com/ByLCY/faktura/layout"
	canvasrenderer "github.com/ByLCY/faktura/renderer/canvas"
	"github.com/ByLCY/faktura/wiretext"
)

type cliOptions struct {
	input    string
	outDir   string
	settings string
	wire     string
	debug    string

	defaultCurrency string
}

func main() {
	var opts cliOptions
	flag.StringVar(&opts.input, "in", "invoice.json", "发票 JSON 文件路径")
	flag.StringVar(&opts.outDir, "out", "output", "PDF 输出目录，文件名由 DOCUMENT_FILENAME_PATTERN 决定")
	flag.StringVar(&opts.settings, "settings", "", "用户设置 JSON 文件路径（币种、付款期限、公司信息）")
	flag.StringVar(&opts.wire, "wire", "", "自由格式电汇信息文本文件，发票未填写电汇信息时使用")
	flag.StringVar(&opts.debug, "debug", "", "布局调试 JSON 输出路径")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}
	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	opts.defaultCurrency = cfg.Document.DefaultCurrency

	gen, err := newGenerator(cfg, logger)
	if err != nil {
		logger.Fatal("failed to set up generator", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
	defer cancel()

	path, doc, err := run(ctx, opts, gen)
	if err != nil {
		logger.Fatal("failed to generate invoice", zap.Error(err))
	}
	fmt.Printf("已生成 PDF：%s（%d 页，合计 %s）\n", path, doc.Pages,
		format.Currency(doc.Invoice.Total(), doc.Invoice.Currency))
}

func newGenerator(cfg *config.Config, logger *zap.Logger) (*export.Generator, error) {
	geometry, err := cfg.Geometry()
	if err != nil {
		return nil, err
	}
	dates, err := cfg.Dates()
	if err != nil {
		return nil, err
	}
	return export.NewGenerator(canvasrenderer.NewRenderer(), export.Options{
		Logger:          logger,
		FileNamePattern: cfg.Document.FileNamePattern,
		Geometry:        geometry,
		Dates:           dates,
		Creator:         cfg.App.Name,
	}), nil
}

// run 串联读取、布局与渲染，返回写入的 PDF 路径。
func run(ctx context.Context, opts cliOptions, gen *export.Generator) (string, *export.Document, error) {
	var inv invoice.Invoice
	if err := readJSON(opts.input, &inv); err != nil {
		return "", nil, err
	}

	var settings *invoice.Settings
	if opts.settings != "" {
		settings = &invoice.Settings{}
		if err := readJSON(opts.settings, settings); err != nil {
			return "", nil, err
		}
	}
	settings = invoice.WithDefaultCurrency(settings, opts.defaultCurrency)

	if opts.wire != "" && inv.WireInstructions.IsZero() {
		raw, err := os.ReadFile(opts.wire)
		if err != nil {
			return "", nil, fmt.Errorf("无法读取电汇信息 %s: %w", opts.wire, err)
		}
		if inv.WireInstructions, err = wiretext.Parse(string(raw)); err != nil {
			return "", nil, err
		}
	}

	if opts.debug != "" {
		res, _, err := gen.Layout(ctx, inv, settings)
		if err != nil {
			return "", nil, fmt.Errorf("布局计算失败: %w", err)
		}
		if err := writeDebug(res, opts.debug); err != nil {
			return "", nil, err
		}
	}

	doc, err := gen.Generate(ctx, inv, settings)
	if err != nil {
		return "", nil, fmt.Errorf("生成 PDF 失败: %w", err)
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return "", nil, fmt.Errorf("创建输出目录失败: %w", err)
	}
	out := filepath.Join(opts.outDir, doc.FileName)
	if err := os.WriteFile(out, doc.Bytes, 0o644); err != nil {
		return "", nil, fmt.Errorf("写入 PDF 文件失败: %w", err)
	}
	return out, doc, nil
}

func readJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("无法打开 %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("解析 %s 失败: %w", strings.TrimSpace(path), err)
	}
	return nil
}

func writeDebug(result *layout.Result, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	f, err := os.Create(debugPath)
	if err != nil {
		return fmt.Errorf("创建调试文件失败: %w", err)
	}
	defer f.Close()
	if err := layout.WriteDebugJSON(f, result); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}
