package replayparser

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/sgreplay/sgreplay/envelope"
	"github.com/sgreplay/sgreplay/sgrep"
	"github.com/sgreplay/sgreplay/sglog"
)

const headerSize = 20

// ErrParsing wraps any panic recovered while parsing a replay, so that
// malformed input never crashes the caller.
var ErrParsing = errors.New("parsing")

// Result is the full outcome of parsing one replay file: the decoded
// header and envelope diagnostics, the projected records and actions, and
// every semantic analyzer's output, ready to be exported via Export.
type Result struct {
	SourceFile string
	Header     sgrep.Header
	Envelope   *envelope.Result

	Records       []sgrep.Record
	FooterRecords []sgrep.Record
	Actions       []sgrep.ActionEvent

	Map      string
	Players  map[int]string
	Teams    map[int]sgrep.Team
	Factions map[int]string

	GameResult sgrep.GameResult

	BuildOrders map[int][]sgrep.BuildOrderEntry
	Upgrades    map[int][]sgrep.UpgradeEntry
	Rewards     map[int][]sgrep.RewardEntry
	Production  map[int]sgrep.ProductionSummary
	Chat        []sgrep.ChatEntry

	DurationSeconds float64

	Entities map[uint64]*sgrep.Entity

	cfg Config
}

// ParseFile reads name and parses it with default configuration.
func ParseFile(ctx context.Context, name string) (*Result, error) {
	return ParseFileConfig(ctx, name, Config{})
}

// ParseFileConfig reads name and parses it with cfg.
func ParseFileConfig(ctx context.Context, name string, cfg Config) (*Result, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read replay file: %w", err)
	}
	res, err := ParseConfig(ctx, data, cfg)
	if err != nil {
		return nil, err
	}
	res.SourceFile = name
	return res, nil
}

// Parse parses data with default configuration.
func Parse(ctx context.Context, data []byte) (*Result, error) {
	return ParseConfig(ctx, data, Config{})
}

// ParseConfig parses data with cfg. Any panic during parsing (e.g. from
// malformed, adversarial input) is recovered and reported as ErrParsing;
// the parser never crashes its caller.
func ParseConfig(ctx context.Context, data []byte, cfg Config) (res *Result, err error) {
	return parseProtected(ctx, data, cfg)
}

func parseProtected(ctx context.Context, data []byte, cfg Config) (res *Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			cfg.logger().Warn("recovered panic while parsing replay",
				sglog.F("panic", fmt.Sprintf("%v", p)),
				sglog.F("stack", string(debug.Stack())),
			)
			res = nil
			err = fmt.Errorf("%w: %v", ErrParsing, p)
		}
	}()
	return parse(ctx, data, cfg)
}

func parse(ctx context.Context, data []byte, cfg Config) (*Result, error) {
	header, err := readHeader(data)
	if err != nil {
		return nil, err
	}

	env, err := envelope.Parse(data[headerSize:])
	if err != nil {
		return nil, err
	}

	records := readRecords(ctx, env.Body)
	footerRecords := readFooterRecords(env.FooterRegion)

	players := identifyPlayers(records, footerRecords)
	mapName := findMapName(records)
	teams := extractTeams(footerRecords, players)
	actions := projectActions(records, cfg.Dictionary)
	entities := trackEntities(actions)
	factions := detectFactions(actions, players)
	gameResult := computeOutcome(records, footerRecords, players, teams)

	res := &Result{
		Header:          *header,
		Envelope:        env,
		Records:         records,
		FooterRecords:   footerRecords,
		Actions:         actions,
		Map:             mapName,
		Players:         players,
		Teams:           teams,
		Factions:        factions,
		GameResult:      gameResult,
		BuildOrders:     computeBuildOrders(actions, factions, cfg.Structures),
		Upgrades:        computeUpgrades(actions),
		Rewards:         computeRewards(actions),
		Production:      computeProduction(actions),
		Chat:            extractChat(records, players, mapName),
		DurationSeconds: computeDuration(actions),
		Entities:        entities,
		cfg:             cfg,
	}
	return res, nil
}

// readHeader unpacks the fixed 20-byte file header preceding the gzip
// envelope.
func readHeader(data []byte) (*sgrep.Header, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: file shorter than %d bytes", envelope.ErrMalformedHeader, headerSize)
	}
	return &sgrep.Header{
		Magic:         binary.LittleEndian.Uint32(data[0:4]),
		FormatVersion: binary.LittleEndian.Uint32(data[4:8]),
		DataOffset:    binary.LittleEndian.Uint32(data[8:12]),
		Changelist:    binary.LittleEndian.Uint32(data[12:16]),
		Flags:         binary.LittleEndian.Uint32(data[16:20]),
	}, nil
}
