package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/enescakir/emoji"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"daifugo/internal/app"
	"daifugo/internal/config"
	"daifugo/internal/domain"
)

func main() {
	cliApp := cli.NewApp()
	cliApp.Name = "daifugo"
	cliApp.Usage = "play a round of the climbing card game in the terminal"
	cliApp.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "TOML config file; flags below override it",
		},
		&cli.IntFlag{
			Name:  "players",
			Usage: "number of players (2..7)",
		},
		&cli.BoolFlag{
			Name:  "ace-high",
			Usage: "promote aces above kings",
		},
		&cli.BoolFlag{
			Name:  "two-high",
			Usage: "promote twos above high aces",
		},
		&cli.IntFlag{
			Name:  "terminate-rank",
			Usage: "effective rank that clears the pile when played",
		},
		&cli.BoolFlag{
			Name:  "revolutions",
			Usage: "four of a kind inverts rank comparison",
		},
		&cli.BoolFlag{
			Name:  "sort-descending",
			Usage: "show hands sorted high to low",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "debug logging",
		},
	}
	cliApp.Action = run

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	if c.Bool("verbose") {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg := config.Default()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if c.IsSet("players") {
		cfg.PlayerCount = c.Int("players")
	}
	if c.IsSet("ace-high") {
		cfg.AceHigh = c.Bool("ace-high")
	}
	if c.IsSet("two-high") {
		cfg.TwoHigh = c.Bool("two-high")
	}
	if c.IsSet("terminate-rank") {
		cfg.TerminateRank = c.Int("terminate-rank")
	}
	if c.IsSet("revolutions") {
		cfg.RevolutionsEnabled = c.Bool("revolutions")
	}
	if c.IsSet("sort-descending") {
		cfg.SortDescending = c.Bool("sort-descending")
	}

	session, _, err := app.NewSession(cfg, nil)
	if err != nil {
		return err
	}

	return gameLoop(session)
}

// gameLoop reads one command per line and re-renders after each; every
// decision about what a player may do comes from session queries.
func gameLoop(s *app.Session) error {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		if s.RoundEnded() {
			renderStandings(s)
			return nil
		}
		render(s)

		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		player := s.CurrentPlayer()
		var err error
		switch fields[0] {
		case "s", "select":
			if len(fields) < 2 {
				fmt.Println("usage: s <card number>")
				continue
			}
			err = toggle(s, player, fields[1])
		case "p", "play":
			_, err = s.Play(player)
		case "x", "pass":
			_, err = s.Pass(player)
		case "q", "quit":
			return nil
		default:
			fmt.Println("commands: s <n> (toggle card), p (play), x (pass), q (quit)")
			continue
		}
		if err != nil {
			fmt.Printf("  %v %v\n", emoji.CrossMark, err)
		}
	}
}

// toggle selects the numbered card, or deselects it if already selected.
func toggle(s *app.Session, player int, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("not a card number: %q", arg)
	}
	hand := s.Hand(player)
	if n < 1 || n > len(hand) {
		return fmt.Errorf("card number %d out of range", n)
	}
	card := hand[n-1]
	if s.IsSelected(player, card) {
		return s.Deselect(player, card)
	}
	return s.Select(player, card)
}

func render(s *app.Session) {
	fmt.Println()
	for id := 1; id <= s.PlayerCount(); id++ {
		if id == s.CurrentPlayer() {
			continue
		}
		fmt.Printf("Player %d: %d cards\n", id, len(s.Hand(id)))
	}

	rank, qty := s.PileTop()
	if qty == 0 {
		fmt.Println("Pile: open")
	} else {
		tops := make([]string, 0, qty)
		for _, c := range s.TopCards() {
			tops = append(tops, cardLabel(c))
		}
		fmt.Printf("Pile: %dx rank %d (%s)\n", qty, rank, strings.Join(tops, " "))
	}
	if s.RevolutionActive() {
		fmt.Printf("%v revolution: lower beats higher\n", emoji.Collision)
	}

	player := s.CurrentPlayer()
	fmt.Printf("\nPlayer %d to act:\n", player)
	for i, c := range s.Hand(player) {
		marker := " "
		switch {
		case s.IsSelected(player, c):
			marker = "*"
		case !s.Selectable(player, c):
			marker = "-"
		}
		fmt.Printf(" [%2d]%s%s", i+1, marker, cardLabel(c))
		if (i+1)%7 == 0 {
			fmt.Println()
		}
	}
	fmt.Println()
}

func renderStandings(s *app.Session) {
	fmt.Printf("\n%v Round over!\n", emoji.Trophy)
	scores := s.Scores()
	for place, id := range s.VictoryOrder() {
		fmt.Printf("  %d. Player %d (%d points)\n", place+1, id, scores[id])
	}
}

func cardLabel(c domain.Card) string {
	var suit emoji.Emoji
	switch c.Suit {
	case domain.Clubs:
		suit = emoji.ClubSuit
	case domain.Diamonds:
		suit = emoji.DiamondSuit
	case domain.Hearts:
		suit = emoji.HeartSuit
	default:
		suit = emoji.SpadeSuit
	}

	face := c.FaceName()
	switch c.FaceValue {
	case 1, 11, 12, 13:
		face = face[:1]
	}
	return fmt.Sprintf("%v%s", suit, face)
}
