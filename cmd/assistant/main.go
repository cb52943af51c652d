// cmd/assistant/main.go
package main

import (
	"bufio"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"yummport-voice/internal/assistant"
	"yummport-voice/internal/catalog"
	"yummport-voice/internal/common/config"
	"yummport-voice/internal/common/logger"
	"yummport-voice/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	zlog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zlog.Sync()
	log := logger.NewZapAdapter(zlog)

	items, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		zlog.Fatal("failed to load catalog", zap.Error(err))
	}
	zlog.Info("catalog loaded",
		zap.String("path", cfg.Catalog.Path),
		zap.Int("items", len(items)),
	)

	if cfg.Metrics.Enabled {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			addr := fmt.Sprintf(":%d", cfg.Metrics.Port)
			zlog.Info("metrics listener started", zap.String("addr", addr))
			if err := http.ListenAndServe(addr, mux); err != nil {
				zlog.Warn("metrics listener stopped", zap.Error(err))
			}
		}()
	}

	// The host owns the cart; the assistant only requests mutations.
	cart := newCart(zlog)
	actions := assistant.Actions{
		AddToCart:  cart.add,
		RemoveItem: cart.remove,
		RemoveLast: cart.removeLast,
		ClearCart:  cart.clear,
		ShowCart:   cart.show,
		Checkout:   cart.checkout,
		SetTheme: func(theme string) {
			zlog.Info("theme switched", zap.String("theme", theme))
		},
		Scroll: func() {},
		Navigate: func(label string) {
			zlog.Info("navigate", zap.String("label", label))
		},
	}

	eng := assistant.New(&assistant.Config{
		WakePhrase:     cfg.Assistant.WakePhrase,
		ResultLimit:    cfg.Assistant.ResultLimit,
		FallbackLimit:  cfg.Assistant.FallbackLimit,
		NearbyRadiusKm: cfg.Assistant.NearbyRadiusKm,
	}, items, actions, log)

	state := session.New(cfg.Assistant.SearchHistoryCap, cfg.Assistant.CommandHistoryCap)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	fmt.Printf("%s ready. Type a request (ctrl-d to quit)\n", cfg.App.Name)
	fmt.Print("> ")
	for {
		select {
		case <-stop:
			zlog.Info("shutting down", zap.String("session", state.ID))
			return
		case line, ok := <-lines:
			if !ok {
				zlog.Info("input closed", zap.String("session", state.ID))
				return
			}
			render(eng.Process(state, line, nil))
			fmt.Print("> ")
		}
	}
}

func render(resp *assistant.Response) {
	fmt.Printf("[intent=%s tone=%s lang=%s]\n", resp.Intent, resp.Tone, resp.Language)
	if resp.Prompt != "" {
		fmt.Printf("assistant: %s\n", resp.Prompt)
	}
	for i, it := range resp.Results {
		fmt.Printf("  %d. %s ₹%d (%s, %.1f★)\n", i+1, it.Name, it.Price, it.Cuisine, it.Rating)
	}
}

// cart is the host-side cart collaborator the assistant drives via callbacks.
type cart struct {
	log   *zap.Logger
	items []catalog.Item
}

func newCart(log *zap.Logger) *cart {
	return &cart{log: log}
}

func (c *cart) add(item catalog.Item, quantity int) {
	for i := 0; i < quantity; i++ {
		c.items = append(c.items, item)
	}
	c.log.Info("cart add", zap.String("item", item.Name), zap.Int("quantity", quantity))
}

func (c *cart) remove(item catalog.Item) {
	for i, it := range c.items {
		if it.ID == item.ID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	c.log.Info("cart remove", zap.String("item", item.Name))
}

func (c *cart) removeLast() {
	if len(c.items) > 0 {
		c.items = c.items[:len(c.items)-1]
	}
}

func (c *cart) clear() {
	c.items = nil
}

func (c *cart) show() {
	if len(c.items) == 0 {
		fmt.Println("cart: empty")
		return
	}
	total := 0
	for _, it := range c.items {
		fmt.Printf("cart: %s ₹%d\n", it.Name, it.Price)
		total += it.Price
	}
	fmt.Printf("cart total: ₹%d\n", total)
}

func (c *cart) checkout() {
	c.log.Info("checkout", zap.Int("items", len(c.items)))
	c.items = nil
}
