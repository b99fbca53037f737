// Command gomoku-client is a terminal client for the game server. It
// renders the mirrored board after every broadcast and reads moves as
// "x y" lines from stdin. All game state comes from the server; the
// client only displays it.
package main

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/playgrid/gomoku-backend/internal/client"
	"github.com/playgrid/gomoku-backend/internal/config"
	"github.com/playgrid/gomoku-backend/internal/protocol"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage:\n\t./gomoku-client <host:port>")
		os.Exit(1)
	}

	conf := config.MustLoad()

	conn, err := net.Dial("tcp", os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
	defer conn.Close()

	mirror := client.NewMirror(conf.HalfWidth)

	go func() {
		chunk := make([]byte, 4096)
		for {
			n, readErr := conn.Read(chunk)
			if n > 0 {
				if feedErr := mirror.Feed(chunk[:n]); feedErr != nil {
					fmt.Fprintf(os.Stderr, "bad server message: %v\n", feedErr)
					os.Exit(1)
				}
				render(mirror)
			}
			if readErr != nil {
				// Losing the server is terminal for the session.
				fmt.Fprintln(os.Stderr, "connection to server lost")
				os.Exit(1)
			}
		}
	}()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		var x, y int
		if _, scanErr := fmt.Sscanf(strings.TrimSpace(scanner.Text()), "%d %d", &x, &y); scanErr != nil {
			fmt.Println("enter a move as: x y")
			continue
		}

		if _, writeErr := conn.Write(protocol.EncodeMove(protocol.Move{X: int8(x), Y: int8(y)})); writeErr != nil {
			fmt.Fprintln(os.Stderr, "connection to server lost")
			os.Exit(1)
		}
	}
}

// render prints the mirrored grid with the origin at the center, plus
// the recipient-specific status line from the latest broadcast.
func render(mirror *client.Mirror) {
	var builder strings.Builder

	half := mirror.Half()
	for y := half; y >= -half; y-- {
		for x := -half; x <= half; x++ {
			switch owner := mirror.Cell(x, y); owner {
			case 0:
				builder.WriteString(" .")
			default:
				builder.WriteString(fmt.Sprintf(" %d", owner))
			}
		}
		builder.WriteString("\n")
	}

	view := mirror.View()
	fmt.Printf("\n%s%s: %s\n> ", builder.String(), view.Name, view.Status)
}
