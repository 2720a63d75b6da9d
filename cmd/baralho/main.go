package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/palemoky/baralho/internal/config"
	"github.com/palemoky/baralho/internal/demo"
	"github.com/palemoky/baralho/internal/logger"
	"github.com/palemoky/baralho/internal/ui"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	plain := flag.Bool("plain", false, "print the walkthrough transcript and exit")
	flag.Parse()

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("加载配置文件失败，使用默认配置: %v", err)
		cfg = config.Default()
	}

	if *plain {
		fmt.Print(demo.Render(demo.Walkthrough(cfg.Demo)))
		return
	}

	if err := run(cfg); err != nil {
		log.Fatalf("启动界面时出错: %v", err)
	}
}

// run owns the logger lifetime so it is closed before main exits.
func run(cfg *config.Config) (err error) {
	if cfg.Log.Enabled {
		if err := logger.Init(cfg.Log.Dir); err != nil {
			return err
		}
	} else {
		logger.Discard()
	}
	defer logger.Close()

	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	if err := ui.Run(cfg); err != nil {
		logger.LogError("ui exited: %v", err)
		return err
	}
	return nil
}
