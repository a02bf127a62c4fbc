// Command saga1000-cli is a small interactive driver for saga1000.Client:
// it prompts for a meter address and command, runs one query, and prints
// the decoded record as JSON.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	saga1000 "github.com/jkgomes/saga1000-client"
	"github.com/jkgomes/saga1000-client/sink/jsonline"
)

func main() {
	var connectDeadline time.Duration
	var replyTimeout time.Duration
	var skipActivation bool
	flag.DurationVar(&connectDeadline, "connect-timeout", 5*time.Second, "TCP connect deadline")
	flag.DurationVar(&replyTimeout, "reply-timeout", 5*time.Second, "per-reply read deadline")
	flag.BoolVar(&skipActivation, "skip-activation", false, "skip the UDP activation probe before each query")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	client := saga1000.NewClient(saga1000.ClientConfig{
		ConnectDeadline: connectDeadline,
		ReplyTimeout:    replyTimeout,
		Logger:          logger,
		SkipActivation:  skipActivation,
	})
	out := jsonline.New(os.Stdout)

	runMenu(ctx, client, out, bufio.NewScanner(os.Stdin))
}

func runMenu(ctx context.Context, client *saga1000.Client, out *jsonline.Sink, in *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}

		ip, ok := prompt(in, "IP do medidor (ou 'sair' para terminar): ")
		if !ok || strings.EqualFold(ip, "sair") {
			return
		}

		portStr, ok := prompt(in, "Porta TCP do medidor: ")
		if !ok {
			return
		}
		port, err := strconv.Atoi(strings.TrimSpace(portStr))
		if err != nil {
			fmt.Println("Erro: porta inválida")
			continue
		}

		cmdStr, ok := prompt(in, "Número do comando (exemplo 20): ")
		if !ok {
			return
		}
		command, err := strconv.ParseUint(strings.TrimSpace(cmdStr), 16, 8)
		if err != nil {
			fmt.Println("Erro: comando inválido")
			continue
		}

		var args saga1000.Args
		if byte(command) == 0x14 {
			serialStr, ok := prompt(in, "Número de série do leitor (0x010203 ou decimal): ")
			if !ok {
				return
			}
			serial, err := parseSerial(serialStr)
			if err != nil {
				fmt.Println("Erro: número de série inválido")
				continue
			}
			args.Serial = serial
		}

		rec, err := client.Query(ctx, ip, port, byte(command), args)
		if err != nil {
			fmt.Printf("Erro: %s\n", err)
			continue
		}
		if err := out.Receive(rec); err != nil {
			fmt.Printf("Erro: falha ao imprimir resultado: %s\n", err)
		}
	}
}

func prompt(in *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}

// parseSerial accepts a 0x-prefixed hex literal or a plain decimal string,
// masking the result to 24 bits (the reader serial number's wire width).
func parseSerial(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return 0, err
		}
		return uint32(v) & 0xFFFFFF, nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v) & 0xFFFFFF, nil
}
