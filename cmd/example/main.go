package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amirhossein-jamali/modlog"
)

func main() {
	// Default builds the façade from configs/<MODLOG_ENV>.yaml and MODLOG_* variables
	logs := modlog.Default()
	defer func() {
		if err := logs.Close(); err != nil {
			log.Printf("Failed to flush loggers: %v", err)
		}
	}()

	net := logs.Register("net")
	db := logs.Register("db")

	net.Info("connecting", "example.org", 443)
	db.Debug("pool ready", map[string]int{"open": 4, "idle": 2})

	// db is noisy: keep buffering it but stop printing
	logs.SetFilter("db")
	for i := 0; i < 3; i++ {
		db.Log("query", i)
	}

	logs.Time("handshake")
	time.Sleep(20 * time.Millisecond)
	logs.TimeEnd("handshake")
	net.Warn("slow handshake")

	logs.Table(map[string]any{"net": len(logs.Logs()["net"]), "db": len(logs.Logs()["db"])})

	if err := logs.Dump("cache"); errors.Is(err, modlog.ErrModuleNotFound) {
		net.Error("nothing to dump:", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "-wait" {
		// Keep running so configuration edits can be observed with facade.watch
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
	}

	_ = logs.Dump("")
}
