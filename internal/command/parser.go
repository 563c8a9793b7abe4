package command

import (
	"errors"
	"regexp"
	"strings"

	"github.com/hailam/voicechess/internal/board"
)

// ErrEmptyCommand is returned for an empty or whitespace-only utterance.
var ErrEmptyCommand = errors.New("empty command")

var (
	digitWordRe   = regexp.MustCompile(`\b(one|two|three|four|five|six|seven|eight)\b`)
	squareMergeRe = regexp.MustCompile(`([a-h]?[a-h])\s+([1-8])`)
	castleRe      = regexp.MustCompile(`castl(e|es|ing)?`)
)

var digitWords = map[string]string{
	"one":   "1",
	"two":   "2",
	"three": "3",
	"four":  "4",
	"five":  "5",
	"six":   "6",
	"seven": "7",
	"eight": "8",
}

// pieceWords maps spoken piece names to piece types. "night" covers the
// common misheard form of "knight".
var pieceWords = map[string]board.PieceType{
	"king":   board.King,
	"queen":  board.Queen,
	"rook":   board.Rook,
	"bishop": board.Bishop,
	"knight": board.Knight,
	"night":  board.Knight,
	"pawn":   board.Pawn,
}

var captureWords = map[string]bool{
	"takes":    true,
	"captures": true,
	"capture":  true,
	"x":        true,
}

var moveWords = map[string]bool{
	"to":    true,
	"moves": true,
	"move":  true,
}

// Parse converts a transcribed utterance into a Command. An empty or
// whitespace-only input fails with ErrEmptyCommand; an utterance whose words
// are all unrecognized parses to a benign Move command with no descriptors,
// which the validator rejects.
func Parse(text string) (Command, error) {
	text = preprocess(text)
	if text == "" {
		return Command{}, ErrEmptyCommand
	}

	if castleRe.MatchString(text) {
		if strings.Contains(text, "long") ||
			strings.Contains(text, "queenside") ||
			strings.Contains(text, "queen side") ||
			strings.Contains(text, "queen-side") {
			return Command{Action: ActionLongCastle}, nil
		}
		return Command{Action: ActionShortCastle}, nil
	}

	if text == "resign" || text == "i resign" {
		return Command{Action: ActionResign}, nil
	}

	if text == "promote" || text == "pawn promote" || text == "promote pawn" {
		return Command{Action: ActionPromote}, nil
	}

	return assemble(tokenize(text)), nil
}

// preprocess lowercases and trims the utterance, rewrites spoken digit words
// to digits, and merges separated file+rank patterns into square tokens
// ("f 3" -> "f3", "ad 5" -> "ad5").
func preprocess(text string) string {
	text = strings.TrimSpace(strings.ToLower(text))
	text = digitWordRe.ReplaceAllStringFunc(text, func(w string) string {
		return digitWords[w]
	})
	text = squareMergeRe.ReplaceAllString(text, "${1}${2}")
	return text
}

// token is one classified word of the utterance.
type token struct {
	kind   InfoKind // InfoPiece, InfoFile, InfoSquare for descriptor tokens
	action Action   // ActionMove or ActionCapture for keyword tokens
	piece  board.PieceType
	file   int
	square board.Square
}

func (t token) isAction() bool {
	return t.action != ActionNone
}

// tokenize splits the utterance on whitespace and classifies each word by
// the first matching rule, discarding anything unrecognized.
func tokenize(text string) []token {
	var tokens []token

	for _, word := range strings.Fields(text) {
		if pt, ok := pieceWords[word]; ok {
			tokens = append(tokens, token{kind: InfoPiece, piece: pt})
			continue
		}
		if captureWords[word] {
			tokens = append(tokens, token{action: ActionCapture})
			continue
		}
		if moveWords[word] {
			tokens = append(tokens, token{action: ActionMove})
			continue
		}
		if sq, err := board.ParseSquare(word); err == nil {
			tokens = append(tokens, token{kind: InfoSquare, square: sq})
			continue
		}
		if len(word) == 1 && word[0] >= 'a' && word[0] <= 'h' {
			tokens = append(tokens, token{kind: InfoFile, file: int(word[0] - 'a')})
			continue
		}
		// A three-letter word like "bd3" is a file followed by a square.
		if len(word) == 3 && word[0] >= 'a' && word[0] <= 'h' {
			if sq, err := board.ParseSquare(word[1:]); err == nil {
				tokens = append(tokens,
					token{kind: InfoFile, file: int(word[0] - 'a')},
					token{kind: InfoSquare, square: sq})
				continue
			}
		}
	}

	return tokens
}

// assemble builds a Command from the token stream. An explicit action token
// splits the stream into start and end groups; otherwise the shape of the
// descriptor tokens determines an implicit Move.
func assemble(tokens []token) Command {
	for i, t := range tokens {
		if t.isAction() {
			return Command{
				Start:  extractInfo(tokens[:i]),
				Action: t.action,
				End:    extractInfo(tokens[i+1:]),
			}
		}
	}

	cmd := Command{Action: ActionMove}
	switch {
	case len(tokens) == 1 && tokens[0].kind == InfoSquare:
		cmd.End = extractInfo(tokens)
	case len(tokens) == 2 && tokens[0].kind == InfoFile && tokens[1].kind == InfoSquare:
		cmd.Start = extractInfo(tokens[:1])
		cmd.End = extractInfo(tokens[1:])
	case len(tokens) == 2 && tokens[0].kind == InfoPiece && tokens[1].kind == InfoSquare:
		cmd.Start = extractInfo(tokens[:1])
		cmd.End = extractInfo(tokens[1:])
	case len(tokens) == 2 && tokens[0].kind == InfoSquare && tokens[1].kind == InfoSquare:
		cmd.Start = extractInfo(tokens[:1])
		cmd.End = extractInfo(tokens[1:])
	case len(tokens) > 0:
		cmd.Start = extractInfo(tokens[:len(tokens)-1])
		cmd.End = extractInfo(tokens[len(tokens)-1:])
	}
	return cmd
}

// extractInfo condenses a token group into at most one descriptor with
// priority piece > square > file.
func extractInfo(tokens []token) Info {
	for _, t := range tokens {
		if t.kind == InfoPiece {
			return PieceInfo(t.piece)
		}
	}
	for _, t := range tokens {
		if t.kind == InfoSquare {
			return SquareInfo(t.square)
		}
	}
	for _, t := range tokens {
		if t.kind == InfoFile {
			return FileInfo(t.file)
		}
	}
	return Info{}
}
