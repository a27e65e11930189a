package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/orbitalgames/cosmic-standoff/internal/game"
)

const intro = `
                            ***Cosmic Standoff***

In a far away galaxy, you are the captain of an ultra-advanced spaceship,
your species last hope.

Looming nearby is an alien spaceship, ready for battle.
It's a high-stakes standoff: one wrong move could be your last.
Will your strategic skills lead to victory, or will the alien outmaneuver you?
Prepare yourself, Captain. The fate of your species is in your hands.


How to Play:
  - You and the alien take turns to move on the game board.
  - On your turn, you can move: Up, Down, Left, Right or stay Still.
  - The alien will also be able to choose between the same directions.
  - NOTE: Press Ctrl + C at any time to quit the game.

How to Win:
  - Your goal is to reach the alien's position, either in the X or Y coordinate.
  - The alien is also trying to reach you, so you must stay alert.
  - The first one to match the opponent's position in either axis, wins.
`

// Console is the terminal front end. It implements both the input and
// rendering sides of a match over a line-based reader and a writer, which
// keeps it fully scriptable in tests.
type Console struct {
	in         *bufio.Scanner
	out        io.Writer
	shortPause time.Duration
	longPause  time.Duration
}

// NewConsole creates a console over the given streams. The pauses add the
// dramatic beats between announcements; zero disables them.
func NewConsole(in io.Reader, out io.Writer, shortPause, longPause time.Duration) *Console {
	return &Console{
		in:         bufio.NewScanner(in),
		out:        out,
		shortPause: shortPause,
		longPause:  longPause,
	}
}

func (c *Console) pause(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// promptInt re-prompts until the player types a whole number.
func (c *Console) promptInt(label string) (int, error) {
	for {
		fmt.Fprintf(c.out, "%s: ", label)
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(c.out, "'%s' is not a whole number. Try again.\n", line)
			continue
		}
		return n, nil
	}
}

// BoardBounds shows the sizing instructions and reads the coordinate range.
// Range validation is the controller's job; this only guarantees integers.
func (c *Console) BoardBounds() (int, int, error) {
	fmt.Fprintf(c.out, `
How large should the board be at the start of the game?

Provide the minimum and maximum coordinates, at least %d units apart.

Example:
(-5, 5) spans 11 units.

Note: A larger difference between the coordinates may increase game duration.

`, game.MinBoardSize)

	minCoord, err := c.promptInt("Minimum Coordinate")
	if err != nil {
		return 0, 0, err
	}
	maxCoord, err := c.promptInt("Maximum Coordinate")
	if err != nil {
		return 0, 0, err
	}
	return minCoord, maxCoord, nil
}

// CaptainMove re-prompts until the player types a recognizable move.
func (c *Console) CaptainMove() (game.Move, error) {
	fmt.Fprint(c.out, "\nYour turn, Captain.\nChoose between: Up, Down, Left, Right, or Still.\n")
	for {
		line, err := c.readLine()
		if err != nil {
			return game.MoveStill, err
		}
		move, err := game.ParseMove(line)
		if err != nil {
			fmt.Fprintf(c.out, "\n'%s' is not a valid move, Captain.\n", line)
			fmt.Fprint(c.out, "Choose between: Up, Down, Left, Right, or Still.\n")
			continue
		}
		return move, nil
	}
}

// AwaitShot blocks on the winning keypress.
func (c *Console) AwaitShot() error {
	fmt.Fprint(c.out, "\nAlien at sight, Captain. Prepare to engage.\n")
	fmt.Fprint(c.out, "Press ENTER to shoot! ")
	_, err := c.readLine()
	return err
}

// PlayAgain re-prompts until the player answers yes or no.
func (c *Console) PlayAgain() (bool, error) {
	fmt.Fprint(c.out, "\nDo you want to play again? Type: (yes or no).\n")
	for {
		line, err := c.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		default:
			fmt.Fprintf(c.out, "'%s' is not a valid answer. Type yes or no.\n", line)
		}
	}
}

func (c *Console) Intro() {
	fmt.Fprintf(c.out, "%s\n", intro)
}

func (c *Console) Score(totals map[string]int) {
	fmt.Fprint(c.out, "\nCurrent score:\n\n")
	for _, agent := range game.Agents {
		name := agent.String()
		fmt.Fprintf(c.out, "-- %s: %d\n", name, totals[name])
	}
}

func (c *Console) InvalidBoard(err error) {
	fmt.Fprintf(c.out, "\nThat board will not do, Captain: %v.\n", err)
	fmt.Fprintf(c.out, "The coordinates must span at least %d units.\n", game.MinBoardSize)
}

func (c *Console) Starter(starter game.Agent) {
	fmt.Fprint(c.out, `
The stars have aligned, Captain.
The Universe rolls the dice to decide who takes the first move.

Let's wait...
`)
	c.pause(c.longPause)
	fmt.Fprintf(c.out, "The %s goes first.\n", starter)
}

func (c *Console) InitialPositions(s *game.MatchState) {
	fmt.Fprintf(c.out, "Your board size: %d units.\n", s.Config.BoardSize)
	fmt.Fprint(c.out, "\nThe initial positions of your ship and the alien vessel, Captain.\n")
	fmt.Fprint(c.out, "Prepare for battle!\n")
	c.printPositions(s)
}

func (c *Console) AlienThinking() {
	fmt.Fprint(c.out, "\nThe Alien is deciding its move.\n")
	c.pause(c.shortPause)
}

func (c *Console) MoveApplied(agent game.Agent, move game.Move, s *game.MatchState) {
	switch {
	case agent == game.CaptainAgent && move == game.MoveStill:
		fmt.Fprint(c.out, "\nCaptain, you stayed Still.\nYour position did not change:\n")
	case agent == game.CaptainAgent:
		fmt.Fprintf(c.out, "\nCaptain, you moved %s.\nYour new position:\n", move)
	case move == game.MoveStill:
		fmt.Fprint(c.out, "\nAlien stayed 'Still'.\nThe positions did not change, Captain:\n")
	default:
		fmt.Fprintf(c.out, "\nThe Alien has moved '%s'.\nHere are the updated positions, Captain:\n", move)
	}
	c.printPositions(s)
}

func (c *Console) printPositions(s *game.MatchState) {
	fmt.Fprintln(c.out)
	for _, agent := range game.Agents {
		pos := s.Position(agent)
		fmt.Fprintf(c.out, "-- %s X: %d\n", agent, pos.X)
		fmt.Fprintf(c.out, "-- %s Y: %d\n", agent, pos.Y)
	}
}

func (c *Console) CaptainWon(game.MatchResult) {
	fmt.Fprint(c.out, "\nBOOM! Direct hit, Captain!\n")
	c.pause(c.shortPause)
	fmt.Fprint(c.out, "\nCongratulations Captain, you destroyed the alien and saved your species.\n")
	fmt.Fprint(c.out, "The galaxy is safe once again.\n")
}

func (c *Console) AlienWon(game.MatchResult) {
	fmt.Fprint(c.out, "\nThe Alien has reached you, Captain. It's getting ready to shoot.\n")
	c.pause(c.shortPause)
	fmt.Fprint(c.out, "\nYou have lost the battle, Captain.\n")
	fmt.Fprint(c.out, "The invasion continues. Our fate is uncertain.\n")
}

func (c *Console) Farewell(totals map[string]int) {
	fmt.Fprint(c.out, "\nExiting the game...\n")
	c.Score(totals)
	fmt.Fprint(c.out, "\nFarewell, Captain.\n")
}
