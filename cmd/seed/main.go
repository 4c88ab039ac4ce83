// Gera o histórico sintético de movimentações e o imprime como JSON em
// stdout. Útil para inspecionar a massa de dados e congelar fixtures de teste:
//
//	go run ./cmd/seed -seed 42 -days 90 > fixtures.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hortidev/quitanda-api/internal/infrastructure/memory"
)

func main() {
	seed := flag.Int64("seed", 42, "seed do gerador (mesma seed, mesma sequência)")
	days := flag.Int("days", 90, "dias de histórico antes de hoje (inclusive)")
	flag.Parse()

	txs := memory.GenerateTransactions(*seed, time.Now(), *days)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(txs); err != nil {
		fmt.Fprintln(os.Stderr, "serializar histórico:", err)
		os.Exit(1)
	}
}
