package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/highcard-dev/console/internal/core/domain"
	"github.com/highcard-dev/console/internal/core/ports"
	"github.com/highcard-dev/console/internal/utils"
	"github.com/lestrrat-go/strftime"
)

const (
	PromptMarker = "$ "
	helpHint     = `Type "help" for available commands`
)

var (
	logLineTime = mustStrftime("[%Y-%m-%d %H:%M:%S]")
	backupStamp = mustStrftime("%Y%m%d-%H%M%S")
)

func mustStrftime(pattern string) *strftime.Strftime {
	f, err := strftime.New(pattern)
	if err != nil {
		panic("invalid strftime pattern " + pattern + ": " + err.Error())
	}
	return f
}

type commandHandler func(ci *CommandInterpreter, argument string)

type builtinCommand struct {
	name        string
	description string
	handler     commandHandler
	// clear replaces the log and must not get the trailing separator
	noSeparator bool
}

type prefixCommand struct {
	prefix      string
	usage       string
	description string
	handler     commandHandler
}

// CommandInterpreter turns raw console lines into log entries and lifecycle requests.
// It keeps no state besides its dispatch tables.
type CommandInterpreter struct {
	serverId   string
	serverName string
	openedAt   time.Time
	logStream  ports.LogStreamInterface
	machine    ports.LifecycleMachineInterface
	metrics    ports.MetricsProvider
	monitor    ports.SessionMonitorInterface
	now        func() time.Time

	builtins map[string]builtinCommand
	order    []string
	prefixes []prefixCommand
}

func NewCommandInterpreter(
	serverId string,
	serverName string,
	openedAt time.Time,
	logStream ports.LogStreamInterface,
	machine ports.LifecycleMachineInterface,
	metrics ports.MetricsProvider,
	monitor ports.SessionMonitorInterface,
) *CommandInterpreter {
	if monitor == nil {
		monitor = noopMonitor{}
	}
	ci := &CommandInterpreter{
		serverId:   serverId,
		serverName: serverName,
		openedAt:   openedAt,
		logStream:  logStream,
		machine:    machine,
		metrics:    metrics,
		monitor:    monitor,
		now:        time.Now,
		builtins:   make(map[string]builtinCommand),
	}
	ci.registerBuiltins()
	return ci
}

func (ci *CommandInterpreter) registerBuiltins() {
	builtins := []builtinCommand{
		{name: ".op", description: "Open operations menu", handler: (*CommandInterpreter).operations},
		{name: "help", description: "Show this help message", handler: (*CommandInterpreter).help},
		{name: "status", description: "Check server status", handler: (*CommandInterpreter).status},
		{name: "start", description: "Start the server", handler: transitionHandler(domain.TransitionStart)},
		{name: "stop", description: "Stop the server", handler: transitionHandler(domain.TransitionStop)},
		{name: "restart", description: "Restart the server", handler: transitionHandler(domain.TransitionRestart)},
		{name: "logs", description: "View system logs", handler: (*CommandInterpreter).systemLogs},
		{name: "players", description: "List online players", handler: (*CommandInterpreter).players},
		{name: "backup", description: "Create a backup", handler: (*CommandInterpreter).backup},
		{name: "clear", description: "Clear console", handler: (*CommandInterpreter).clear, noSeparator: true},
	}
	for _, b := range builtins {
		ci.builtins[b.name] = b
		ci.order = append(ci.order, b.name)
	}

	ci.prefixes = []prefixCommand{
		{prefix: "say ", usage: "say <message>", description: "Broadcast a message", handler: (*CommandInterpreter).say},
		{prefix: "tp ", usage: "tp <player> <target>", description: "Teleport a player", handler: (*CommandInterpreter).teleport},
		{prefix: "give ", usage: "give <player> <item> [amount]", description: "Give an item", handler: (*CommandInterpreter).give},
		{prefix: "kick ", usage: "kick <player>", description: "Kick a player", handler: (*CommandInterpreter).kick},
		{prefix: "ban ", usage: "ban <player>", description: "Ban a player", handler: (*CommandInterpreter).ban},
	}
}

// Resolve classifies a raw line. Every line resolves to exactly one kind: empty, builtin
// (exact match), prefixed or unknown.
func (ci *CommandInterpreter) Resolve(rawLine string) domain.Resolution {
	trimmed := strings.TrimSpace(rawLine)
	if trimmed == "" {
		return domain.Resolution{Kind: domain.ResolutionEmpty}
	}

	name := strings.ToLower(trimmed)
	if _, ok := ci.builtins[name]; ok {
		return domain.Resolution{Kind: domain.ResolutionBuiltin, Name: name}
	}

	for _, p := range ci.prefixes {
		if rest, ok := utils.CutPrefixFold(trimmed, p.prefix); ok {
			return domain.Resolution{
				Kind:     domain.ResolutionPrefixed,
				Name:     strings.TrimSpace(p.prefix),
				Argument: strings.TrimSpace(rest),
			}
		}
	}

	return domain.Resolution{Kind: domain.ResolutionUnknown, Name: trimmed}
}

// Execute runs one console line. All output goes to the log stream.
func (ci *CommandInterpreter) Execute(rawLine string) {
	ci.logStream.Append(PromptMarker+rawLine, domain.EntryKindCommand)

	resolution := ci.Resolve(rawLine)
	ci.monitor.CommandResolved(resolution.Kind)

	switch resolution.Kind {
	case domain.ResolutionEmpty:
		return
	case domain.ResolutionBuiltin:
		cmd := ci.builtins[resolution.Name]
		cmd.handler(ci, "")
		if cmd.noSeparator {
			return
		}
	case domain.ResolutionPrefixed:
		for _, p := range ci.prefixes {
			if strings.TrimSpace(p.prefix) == resolution.Name {
				p.handler(ci, resolution.Argument)
				break
			}
		}
	default:
		ci.fail(fmt.Sprintf("Command not found: %s", resolution.Name), helpHint)
	}

	ci.logStream.Append("", domain.EntryKindOutput)
}

func (ci *CommandInterpreter) output(text string) {
	ci.logStream.Append(text, domain.EntryKindOutput)
}

func (ci *CommandInterpreter) success(text string) {
	ci.logStream.Append(text, domain.EntryKindSuccess)
}

// fail writes an error together with its follow-up hint.
func (ci *CommandInterpreter) fail(text string, hint string) {
	ci.logStream.Append(text, domain.EntryKindError)
	ci.logStream.Append(hint, domain.EntryKindOutput)
}

func transitionHandler(kind domain.TransitionKind) commandHandler {
	return func(ci *CommandInterpreter, _ string) {
		err := ci.machine.Request(kind)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrAlreadyRunning):
			ci.fail("Server is already running.", `Type "restart" to restart it or "stop" to stop it`)
		case errors.Is(err, domain.ErrAlreadyStopped):
			ci.fail("Server is already stopped.", `Type "start" to start it`)
		case errors.Is(err, domain.ErrTransitionBusy):
			ci.fail(
				fmt.Sprintf("Server is busy: %s in progress.", strings.ToLower(ci.machine.State().Label())),
				"Wait for the current operation to finish",
			)
		default:
			ci.fail(fmt.Sprintf("Could not %s server: %v", kind, err), helpHint)
		}
	}
}

func (ci *CommandInterpreter) operations(_ string) {
	ci.output("Server Operations Menu:")
	ci.output("  1. restart - Restart the server")
	ci.output("  2. stop - Stop the server")
	ci.output("  3. status - Check server status")
	ci.output("  4. logs - View system logs")
}

func (ci *CommandInterpreter) help(_ string) {
	ci.output("Available commands:")
	for _, name := range ci.order {
		ci.output(fmt.Sprintf("  %s - %s", name, ci.builtins[name].description))
	}
	for _, p := range ci.prefixes {
		ci.output(fmt.Sprintf("  %s - %s", p.usage, p.description))
	}
}

func (ci *CommandInterpreter) status(_ string) {
	state := ci.machine.State()
	gauges := ci.metrics.Gauges(ci.serverId)

	ci.output(fmt.Sprintf("Server: %s (%s)", ci.serverName, ci.serverId))
	if state == domain.LifecycleStateRunning {
		ci.output("Uptime: " + utils.FormatUptime(ci.now().Sub(ci.machine.Since())))
		ci.output(fmt.Sprintf("Memory: %s / %s", humanize.Bytes(gauges.MemoryUsed), humanize.Bytes(gauges.MemoryTotal)))
		ci.output(fmt.Sprintf("CPU Load: %.0f%%", gauges.CpuPercent))
		ci.output(fmt.Sprintf("Players: %d/%d", gauges.PlayersOnline, gauges.MaxPlayers))
	} else {
		ci.output("Uptime: offline")
		ci.output(fmt.Sprintf("Memory: %s / %s", humanize.Bytes(0), humanize.Bytes(gauges.MemoryTotal)))
		ci.output("CPU Load: 0%")
		ci.output(fmt.Sprintf("Players: 0/%d", gauges.MaxPlayers))
	}

	kind := domain.EntryKindOutput
	switch state {
	case domain.LifecycleStateRunning:
		kind = domain.EntryKindSuccess
	case domain.LifecycleStateStopped:
		kind = domain.EntryKindError
	}
	ci.logStream.Append("Server Status: "+state.Label(), kind)
}

func (ci *CommandInterpreter) systemLogs(_ string) {
	lines := []struct {
		offset time.Duration
		text   string
		kind   domain.EntryKind
	}{
		{0, "System started", domain.EntryKindOutput},
		{27 * time.Second, "Database connected", domain.EntryKindOutput},
		{76 * time.Second, "API listening on port 8080", domain.EntryKindOutput},
		{397 * time.Second, "Health check passed", domain.EntryKindSuccess},
	}
	for _, l := range lines {
		ci.logStream.Append(logLineTime.FormatString(ci.openedAt.Add(l.offset))+" "+l.text, l.kind)
	}
}

func (ci *CommandInterpreter) players(_ string) {
	gauges := ci.metrics.Gauges(ci.serverId)
	online := gauges.PlayersOnline
	if ci.machine.State() != domain.LifecycleStateRunning {
		online = 0
	}

	if online == 0 {
		ci.output("No players online")
		return
	}

	ci.output(fmt.Sprintf("Online players: %d/%d", online, gauges.MaxPlayers))
	for _, name := range ci.metrics.PlayerNames(ci.serverId, online) {
		ci.output("  - " + name)
	}
}

func (ci *CommandInterpreter) backup(_ string) {
	ci.output(fmt.Sprintf("Creating backup of %s...", ci.serverName))
	ci.success(fmt.Sprintf("Backup created: backup-%s-%s.tar.gz", ci.serverId, backupStamp.FormatString(ci.now())))
}

func (ci *CommandInterpreter) clear(_ string) {
	ci.logStream.Reset(ClearBanner(ci.serverName))
}

func (ci *CommandInterpreter) say(message string) {
	ci.success("[Server] " + message)
}

func (ci *CommandInterpreter) teleport(argument string) {
	ci.success("Teleported " + argument)
}

func (ci *CommandInterpreter) give(argument string) {
	ci.success("Gave " + argument)
}

func (ci *CommandInterpreter) kick(player string) {
	ci.success(fmt.Sprintf("Kicked %s from the server", player))
}

func (ci *CommandInterpreter) ban(player string) {
	ci.success(fmt.Sprintf("Banned %s from the server", player))
}
