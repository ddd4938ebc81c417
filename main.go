package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/judgegodwins/tapatan-client/game"
	"github.com/judgegodwins/tapatan-client/session"
	"github.com/judgegodwins/tapatan-client/util"
	"github.com/judgegodwins/tapatan-client/ws"
)

func main() {
	util.InitValidator()

	config, err := util.LoadConfig()

	if err != nil {
		log.Fatal(err)
	}

	logger := initLogger(config)

	manager := ws.NewManager(config.ServerURL, config.RoomID, logger)
	controller := session.NewController(manager, util.Validate, logger)

	manager.Handle(ws.EventGameState, controller.HandleGameState)
	manager.Handle(ws.EventError, controller.HandleError)

	manager.OnOpen(func() {
		controller.ResetView()

		if config.PlayerName != "" {
			if err := controller.RequestName(config.PlayerName); err != nil {
				logger.Warn("cannot submit player name", "error", err)
			}
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := manager.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("connection manager stopped", "error", err)
		}
	}()

	repl(controller)
}

// initialize logger.
func initLogger(config *util.Config) *slog.Logger {
	var level slog.Level

	switch config.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// repl reads user intents from stdin until EOF. It is deliberately not a
// board renderer; it only prints projections of the session view.
func repl(controller *session.Controller) {
	fmt.Println("commands: name <name> | move <piece-id> <position> | reset | state")

	scanner := bufio.NewScanner(os.Stdin)

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())

		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "name":
			if err := controller.RequestName(strings.Join(fields[1:], " ")); err != nil {
				fmt.Println("name rejected:", err)
			}
		case "move":
			if len(fields) != 3 {
				fmt.Println("usage: move <piece-id> <position>")
				continue
			}

			id, err := strconv.Atoi(fields[1])
			if err != nil {
				fmt.Println("piece id must be a number")
				continue
			}

			piece, ok := controller.View().FindPiece(id)
			if !ok {
				fmt.Println("no piece with id", id)
				continue
			}

			if err := controller.RequestMove(piece, game.Position(fields[2])); err != nil {
				fmt.Println("move rejected:", err)
			}
		case "reset":
			if err := controller.RequestReset(); err != nil {
				fmt.Println("reset rejected:", err)
			}
		case "state":
			printState(controller.View())
		default:
			fmt.Println("unknown command:", fields[0])
		}
	}
}

func printState(view game.SessionView) {
	fmt.Println("readiness:", view.Readiness())
	fmt.Println("my turn:", view.IsMyTurn())

	for _, piece := range view.Pieces {
		fmt.Printf("piece %d (%s) at %s\n", piece.ID, view.PlayerLabel(piece.Player), piece.Position)
	}

	if view.Winner != game.SlotNone {
		fmt.Println("winner:", view.WinnerName())
	}
}
