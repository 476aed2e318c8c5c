package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"meme-studio/internal/browse"
	"meme-studio/pkg/memeapi"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "meme-studio API base URL")
	flag.Parse()

	client := memeapi.NewClient(*addr)
	p := tea.NewProgram(browse.New(client), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "browse:", err)
		os.Exit(1)
	}
}
