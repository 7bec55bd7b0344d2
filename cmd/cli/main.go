package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/nickyhof/SQLExplorer"
	"github.com/nickyhof/SQLExplorer/core"
	"github.com/nickyhof/SQLExplorer/db"
	"github.com/nickyhof/SQLExplorer/internal/config"
	"github.com/nickyhof/SQLExplorer/internal/logging"
	"github.com/nickyhof/SQLExplorer/ps"
)

const (
	PromptColor  = "\033[36m" // Cyan
	ErrorColor   = "\033[31m" // Red
	SuccessColor = "\033[32m" // Green
	WarnColor    = "\033[33m" // Yellow
	ResetColor   = "\033[0m"
	BoldColor    = "\033[1m"
)

// Version is set at build time via -ldflags
var Version = "dev"

// errQuit is returned by handleCommand once the connection has been closed
var errQuit = errors.New("quit")

// CLI holds the CLI state
type CLI struct {
	engine   *db.Engine
	journal  *ps.Persistence
	cfg      *config.Config
	out      io.Writer
	history  []string
	database string // current connection name

	// connect opens a new engine for a DSN
	connect func(dsn string) (*db.Engine, *ps.Persistence, error)
	// confirm asks a yes/no question
	confirm func(question string) bool
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	connection := flag.String("connection", "default", "Named connection from the config file")
	dsn := flag.String("dsn", "", "Store DSN, overrides -connection")
	sqlFile := flag.String("sqlFile", "", "SQL file to execute (non-interactive)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("%sError: %v%s\n", ErrorColor, err, ResetColor)
		os.Exit(1)
	}

	logger, closeLog := logging.Setup(cfg.Log.Level, cfg.Log.SeqURL, os.Stderr)
	defer closeLog()

	connect := func(dsn string) (*db.Engine, *ps.Persistence, error) {
		instance, err := SQLExplorer.Open(SQLExplorer.Options{
			Driver:     cfg.Store.Driver,
			DSN:        dsn,
			Journal:    cfg.Journal.Enabled,
			JournalDir: cfg.Journal.Dir,
			Identity:   core.Identity{Name: cfg.Journal.AuthorName, Email: cfg.Journal.AuthorEmail},
			S3: &db.S3Config{
				Region:    cfg.Export.S3.Region,
				Endpoint:  cfg.Export.S3.Endpoint,
				AccessKey: cfg.Export.S3.AccessKey,
				SecretKey: cfg.Export.S3.SecretKey,
			},
			Logger: logger,
		})
		if err != nil {
			return nil, nil, err
		}
		return instance.Engine(), instance.Persistence, nil
	}

	target := *dsn
	if target == "" {
		var ok bool
		if target, ok = cfg.Connection(*connection); !ok {
			fmt.Printf("%sError: unknown connection %s%s\n", ErrorColor, *connection, ResetColor)
			os.Exit(1)
		}
	}

	engine, journal, err := connect(target)
	if err != nil {
		fmt.Printf("%sError: %v%s\n", ErrorColor, err, ResetColor)
		os.Exit(1)
	}

	cli := &CLI{
		engine:   engine,
		journal:  journal,
		cfg:      cfg,
		out:      os.Stdout,
		database: connectionLabel(*connection, *dsn),
		connect:  connect,
	}

	// Execute SQL file if provided
	if *sqlFile != "" {
		err := cli.importFile(context.Background(), *sqlFile)
		engine.CloseDiscarding()
		if err != nil {
			os.Exit(1)
		}
		return
	}

	printBanner()
	cli.run()
}

func connectionLabel(name, dsn string) string {
	if dsn != "" {
		return dsn
	}
	return name
}

func printBanner() {
	fmt.Println()
	bannerWidth := 39 // inner width of the banner box
	versionLine := fmt.Sprintf("SQLExplorer v%s", Version)
	padding := bannerWidth - len(versionLine) - 2 // -2 for "  " margins
	if padding < 0 {
		padding = 0
	}
	leftPad := padding / 2
	rightPad := padding - leftPad

	fmt.Printf("%s%s╔═══════════════════════════════════════╗%s\n", BoldColor, PromptColor, ResetColor)
	fmt.Printf("%s%s║ %*s%s%*s ║%s\n", BoldColor, PromptColor, leftPad, "", versionLine, rightPad, "", ResetColor)
	fmt.Printf("%s%s║   Browse, edit and commit table rows  ║%s\n", BoldColor, PromptColor, ResetColor)
	fmt.Printf("%s%s╚═══════════════════════════════════════╝%s\n", BoldColor, PromptColor, ResetColor)
	fmt.Println()
	fmt.Println("Type .help for commands, .quit to exit")
	fmt.Println()
}

func (cli *CLI) run() {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cli.getPrompt(false),
		HistoryFile:     getHistoryPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		fmt.Printf("%sreadline: %v%s\n", ErrorColor, err, ResetColor)
		return
	}
	defer rl.Close()

	cli.confirm = func(question string) bool {
		rl.SetPrompt(question + " [y/N] ")
		defer rl.SetPrompt(cli.getPrompt(false))
		answer, err := rl.Readline()
		if err != nil {
			return false
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	}

	ctx := context.Background()
	var multiLineBuffer strings.Builder

	for {
		input, err := rl.Readline()
		if err == readline.ErrInterrupt {
			// Ctrl+C clears the current statement
			multiLineBuffer.Reset()
			rl.SetPrompt(cli.getPrompt(false))
			continue
		}
		if err != nil {
			// EOF: nothing left to confirm a discard with
			cli.quit(true)
			return
		}

		if strings.TrimSpace(input) == "" {
			continue
		}

		// Check for special commands (only when not in multi-line mode)
		if multiLineBuffer.Len() == 0 && strings.HasPrefix(strings.TrimSpace(input), ".") {
			cli.addToHistory(strings.TrimSpace(input))
			if errors.Is(cli.handleCommand(ctx, input), errQuit) {
				return
			}
			rl.SetPrompt(cli.getPrompt(false))
			continue
		}

		// Multi-line support: accumulate until we see a semicolon
		multiLineBuffer.WriteString(input)

		trimmed := strings.TrimSpace(multiLineBuffer.String())
		if !strings.HasSuffix(trimmed, ";") {
			multiLineBuffer.WriteString(" ")
			rl.SetPrompt(cli.getPrompt(true))
			continue
		}

		query := strings.TrimSuffix(trimmed, ";")
		multiLineBuffer.Reset()
		rl.SetPrompt(cli.getPrompt(false))

		if strings.TrimSpace(query) == "" {
			continue
		}

		cli.addToHistory(query + ";")
		cli.execute(ctx, query)
	}
}

func (cli *CLI) getPrompt(multiLine bool) string {
	if multiLine {
		return fmt.Sprintf("%s   ...>%s ", PromptColor, ResetColor)
	}

	dbPart := ""
	if cli.database != "" && cli.database != "default" {
		dbPart = ":" + cli.database
	}

	tablePart := ""
	if session, err := cli.engine.Session(); err == nil {
		dirty := ""
		if !session.Ledger().IsEmpty() {
			dirty = "*"
		}
		tablePart = fmt.Sprintf(" (%s%s)", session.Table().Name, dirty)
	}

	return fmt.Sprintf("%ssqlexplorer%s%s>%s ", PromptColor, dbPart, tablePart, ResetColor)
}

func (cli *CLI) printError(err error) {
	fmt.Fprintf(cli.out, "%s✗ Error: %v%s\n", ErrorColor, err, ResetColor)
}

func (cli *CLI) printSuccess(format string, args ...any) {
	fmt.Fprintf(cli.out, "%s✓ %s%s\n", SuccessColor, fmt.Sprintf(format, args...), ResetColor)
}

func (cli *CLI) printUsage(usage string) {
	fmt.Fprintf(cli.out, "%s✗ Usage: %s%s\n", ErrorColor, usage, ResetColor)
}

func (cli *CLI) execute(ctx context.Context, query string) {
	result, err := cli.engine.Execute(ctx, query)
	if err != nil {
		cli.printError(err)
		return
	}
	result.Display(cli.out)
}

// handleCommand runs one dot-command. It returns errQuit once the CLI
// should exit.
func (cli *CLI) handleCommand(ctx context.Context, input string) error {
	parts := strings.Fields(strings.TrimSpace(input))
	if len(parts) == 0 {
		return nil
	}
	args := parts[1:]

	switch strings.ToLower(parts[0]) {
	case ".quit", ".exit", ".q":
		if cli.quit(false) {
			return errQuit
		}

	case ".quit!", ".exit!":
		cli.quit(true)
		return errQuit

	case ".help", ".h", ".?":
		cli.printHelp()

	case ".open":
		if len(args) != 1 {
			cli.printUsage(".open <connection|dsn>")
			break
		}
		cli.open(args[0])

	case ".tables":
		cli.showTables(ctx)

	case ".use":
		if len(args) != 1 {
			cli.printUsage(".use <table>")
			break
		}
		cli.useTable(ctx, args[0])

	case ".show":
		cli.showRows()

	case ".reload":
		cli.reload(ctx)

	case ".schema":
		cli.showSchema()

	case ".indexes":
		cli.showIndexes(ctx)

	case ".set":
		if len(args) < 3 {
			cli.printUsage(".set <row> <column> <value>")
			break
		}
		cli.setCell(args[0], args[1], restOf(input, 3))

	case ".insert":
		if len(args) == 0 {
			cli.printUsage(".insert <column>=<value> ...")
			break
		}
		cli.insertRow(args)

	case ".delete":
		if len(args) != 1 {
			cli.printUsage(".delete <row>")
			break
		}
		cli.deleteRow(args[0])

	case ".pending":
		cli.showPending()

	case ".commit":
		cli.commit(ctx)

	case ".rollback":
		cli.rollback(ctx)

	case ".search":
		if len(args) == 0 {
			cli.printUsage(".search <text>")
			break
		}
		cli.search(ctx, restOf(input, 1))

	case ".export":
		if len(args) == 0 {
			cli.printUsage(".export <path> [query]")
			break
		}
		cli.export(ctx, args[0], restOf(input, 2))

	case ".import":
		if len(args) != 1 {
			cli.printUsage(".import <file.sql>")
			break
		}
		cli.importFile(ctx, args[0])

	case ".log":
		cli.showJournal(args)

	case ".push":
		remote := ""
		if len(args) > 0 {
			remote = args[0]
		}
		cli.push(remote)

	case ".history":
		cli.printHistory()

	case ".clear", ".cls":
		fmt.Fprint(cli.out, "\033[H\033[2J")

	case ".version":
		fmt.Fprintf(cli.out, "SQLExplorer version %s\n", Version)

	default:
		fmt.Fprintf(cli.out, "%s✗ Unknown command: %s (type .help for commands)%s\n", ErrorColor, parts[0], ResetColor)
	}

	return nil
}

// restOf returns input with its first n fields removed, keeping the
// spacing of what is left.
func restOf(input string, n int) string {
	rest := strings.TrimSpace(input)
	for i := 0; i < n && rest != ""; i++ {
		idx := strings.IndexAny(rest, " \t")
		if idx < 0 {
			return ""
		}
		rest = strings.TrimLeft(rest[idx:], " \t")
	}
	return rest
}

func (cli *CLI) printHelp() {
	w := cli.out
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s%sSpecial Commands:%s\n", BoldColor, PromptColor, ResetColor)
	fmt.Fprintln(w, "  .help, .h              Show this help message")
	fmt.Fprintln(w, "  .quit, .exit           Exit (refused while edits are pending)")
	fmt.Fprintln(w, "  .quit!                 Discard pending edits and exit")
	fmt.Fprintln(w, "  .open <conn|dsn>       Switch to another connection")
	fmt.Fprintln(w, "  .tables                List tables")
	fmt.Fprintln(w, "  .use <table>           Load a table for editing")
	fmt.Fprintln(w, "  .show                  Show rows with pending edits marked")
	fmt.Fprintln(w, "  .reload                Read the table again")
	fmt.Fprintln(w, "  .schema                Show column definitions")
	fmt.Fprintln(w, "  .indexes               Show indexes and constraints")
	fmt.Fprintln(w, "  .set <row> <col> <val> Edit one cell (NULL clears it)")
	fmt.Fprintln(w, "  .insert <col>=<val>... Add a row")
	fmt.Fprintln(w, "  .delete <row>          Delete a row")
	fmt.Fprintln(w, "  .pending               List pending edits")
	fmt.Fprintln(w, "  .commit                Apply pending edits in one transaction")
	fmt.Fprintln(w, "  .rollback              Discard pending edits")
	fmt.Fprintln(w, "  .search <text>         Search text columns of the table")
	fmt.Fprintln(w, "  .export <path> [query] Write the table or a query as CSV")
	fmt.Fprintln(w, "  .import <file>         Execute SQL statements from a file")
	fmt.Fprintln(w, "  .log [table]           Show journaled commits")
	fmt.Fprintln(w, "  .push [remote]         Push the journal to a git remote")
	fmt.Fprintln(w, "  .history               Show command history")
	fmt.Fprintln(w, "  .clear                 Clear the screen")
	fmt.Fprintln(w, "  .version               Show version info")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s%sSQL:%s any statement ending with ';' runs directly against the store\n", BoldColor, PromptColor, ResetColor)
	fmt.Fprintln(w)
}

// quit closes the connection. Without force it refuses while edits are
// pending and reports false.
func (cli *CLI) quit(force bool) bool {
	var err error
	if force {
		err = cli.engine.CloseDiscarding()
	} else {
		err = cli.engine.Close()
	}

	if errors.Is(err, db.ErrPendingChanges) {
		fmt.Fprintf(cli.out, "%s✗ %d pending change(s): .commit, .rollback or .quit! to discard%s\n", ErrorColor, cli.pendingCount(), ResetColor)
		return false
	}
	if err != nil {
		cli.printError(err)
	}
	fmt.Fprintf(cli.out, "%sGoodbye!%s\n", SuccessColor, ResetColor)
	return true
}

func (cli *CLI) pendingCount() int {
	session, err := cli.engine.Session()
	if err != nil {
		return 0
	}
	return session.Ledger().Size()
}

// open switches to another connection. The current engine stays in use
// until the new one is connected.
func (cli *CLI) open(target string) {
	if cli.pendingCount() > 0 {
		cli.printError(db.ErrPendingChanges)
		return
	}

	dsn, ok := cli.cfg.Connection(target)
	if !ok {
		dsn = target
	}

	engine, journal, err := cli.connect(dsn)
	if err != nil {
		cli.printError(err)
		return
	}

	if err := cli.engine.Close(); err != nil {
		cli.printError(err)
	}

	cli.engine = engine
	cli.journal = journal
	cli.database = target
	cli.printSuccess("Connected: %s", target)
}

func (cli *CLI) showTables(ctx context.Context) {
	tables, err := cli.engine.Tables(ctx)
	if err != nil {
		cli.printError(err)
		return
	}

	data := make([][]string, len(tables))
	for i, name := range tables {
		data[i] = []string{name}
	}
	db.QueryResult{Columns: []string{"table"}, Data: data, RecordsRead: len(data)}.Display(cli.out)
}

func (cli *CLI) useTable(ctx context.Context, name string) {
	session, err := cli.engine.OpenTable(ctx, name)
	if err != nil {
		cli.printError(err)
		return
	}
	cli.printSuccess("Loaded %s: %d row(s)", name, session.Snapshot().Len())
}

func (cli *CLI) reload(ctx context.Context) {
	if err := cli.engine.Reload(ctx); err != nil {
		cli.printError(err)
		return
	}
	session, _ := cli.engine.Session()
	cli.printSuccess("Reloaded %s: %d row(s)", session.Table().Name, session.Snapshot().Len())
}

func (cli *CLI) session() (*db.Session, bool) {
	session, err := cli.engine.Session()
	if err != nil {
		cli.printError(err)
		return nil, false
	}
	return session, true
}

func (cli *CLI) showRows() {
	session, ok := cli.session()
	if !ok {
		return
	}

	columns := session.Table().ColumnNames()
	table := db.NewTable(cli.out)
	table.Header(append([]string{"", "#"}, columns...))

	view := session.View()
	for _, row := range view {
		cells := []string{row.State.Marker(), fmt.Sprint(row.Position)}
		for _, col := range columns {
			cells = append(cells, core.Text(row.Row[col]))
		}
		table.Row(cells)
	}
	table.Render()

	fmt.Fprintf(cli.out, "%d row(s), %d pending change(s)\n", len(view), session.Ledger().Size())
}

func (cli *CLI) showSchema() {
	session, ok := cli.session()
	if !ok {
		return
	}

	table := db.NewTable(cli.out)
	table.Header([]string{"#", "column", "type", "nullable", "default", "pk"})
	for _, col := range session.Table().Columns {
		def := ""
		if col.Default != nil {
			def = *col.Default
		}
		table.Row([]string{
			fmt.Sprint(col.Position),
			col.Name,
			col.Type,
			yesNo(col.Nullable),
			def,
			yesNo(col.PrimaryKey),
		})
	}
	table.Render()
}

func (cli *CLI) showIndexes(ctx context.Context) {
	session, ok := cli.session()
	if !ok {
		return
	}

	indexes := session.Table().Indexes
	if len(indexes) == 0 {
		fmt.Fprintln(cli.out, "No indexes")
		return
	}

	table := db.NewTable(cli.out)
	table.Header([]string{"index", "unique", "primary", "columns", "active", "entries"})
	for _, index := range indexes {
		stats, err := session.TableOp().IndexStats(ctx, index)
		if err != nil {
			cli.printError(err)
			return
		}
		table.Row([]string{
			index.Name,
			yesNo(index.Unique),
			yesNo(index.Primary),
			strings.Join(index.ColumnNames(), ", "),
			yesNo(stats.Active),
			fmt.Sprint(stats.Entries),
		})
	}
	table.Render()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func parsePosition(arg string) (int, error) {
	position, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid row %q", arg)
	}
	return position, nil
}

// cellValue maps the literal NULL to a cleared cell.
func cellValue(text string) any {
	if strings.EqualFold(text, "NULL") {
		return nil
	}
	return text
}

func (cli *CLI) setCell(row, column, value string) {
	session, ok := cli.session()
	if !ok {
		return
	}

	position, err := parsePosition(row)
	if err != nil {
		cli.printError(err)
		return
	}

	if err := session.SetCell(position, column, cellValue(value)); err != nil {
		cli.printError(err)
		return
	}
	cli.printSuccess("Row %d: %s = %s (%d pending)", position, column, value, session.Ledger().Size())
}

func (cli *CLI) insertRow(assignments []string) {
	session, ok := cli.session()
	if !ok {
		return
	}

	row := core.Row{}
	for _, assignment := range assignments {
		column, value, found := strings.Cut(assignment, "=")
		if !found || column == "" {
			cli.printUsage(".insert <column>=<value> ...")
			return
		}
		if _, ok := session.Table().Column(column); !ok {
			cli.printError(fmt.Errorf("unknown column %s", column))
			return
		}
		row[column] = cellValue(value)
	}

	position := session.RecordInsert(row)
	cli.printSuccess("Row %d added (%d pending)", position, session.Ledger().Size())
}

func (cli *CLI) deleteRow(row string) {
	session, ok := cli.session()
	if !ok {
		return
	}

	position, err := parsePosition(row)
	if err != nil {
		cli.printError(err)
		return
	}

	if err := session.RecordDelete(position); err != nil {
		cli.printError(err)
		return
	}
	cli.printSuccess("Row %d marked for deletion (%d pending)", position, session.Ledger().Size())
}

func (cli *CLI) showPending() {
	session, ok := cli.session()
	if !ok {
		return
	}

	entries := session.Ledger().Entries()
	if len(entries) == 0 {
		fmt.Fprintln(cli.out, "No pending changes")
		return
	}

	table := db.NewTable(cli.out)
	table.Header([]string{"#", "kind", "row"})
	for i, change := range entries {
		table.Row([]string{fmt.Sprint(i + 1), change.Kind.String(), fmt.Sprint(change.Position)})
	}
	table.Render()

	fmt.Fprintf(cli.out, "Dirty rows: %s\n", joinInts(session.Ledger().TouchedPositions()))
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}

func (cli *CLI) commit(ctx context.Context) {
	session, ok := cli.session()
	if !ok {
		return
	}
	if session.Ledger().IsEmpty() {
		fmt.Fprintln(cli.out, "No pending changes")
		return
	}

	result, err := cli.engine.Commit(ctx)
	if err != nil {
		cli.printError(err)
		if !session.Ledger().IsEmpty() {
			fmt.Fprintf(cli.out, "%s%d change(s) still pending: fix and .commit again, or .rollback%s\n", WarnColor, session.Ledger().Size(), ResetColor)
		}
		return
	}
	result.Display(cli.out)
}

func (cli *CLI) rollback(ctx context.Context) {
	confirm := func(pending int) bool {
		if cli.confirm == nil {
			return true
		}
		return cli.confirm(fmt.Sprintf("Discard %d pending change(s)?", pending))
	}

	discarded, err := cli.engine.Rollback(ctx, confirm)
	switch {
	case errors.Is(err, db.ErrRollbackDeclined):
		fmt.Fprintln(cli.out, "Rollback cancelled")
	case err != nil:
		cli.printError(err)
	case discarded == 0:
		fmt.Fprintln(cli.out, "No pending changes")
	default:
		cli.printSuccess("%d change(s) discarded", discarded)
	}
}

func (cli *CLI) search(ctx context.Context, text string) {
	result, err := cli.engine.Search(ctx, text)
	if err != nil {
		cli.printError(err)
		return
	}
	result.Display(cli.out)
}

func (cli *CLI) export(ctx context.Context, path, query string) {
	var err error
	if query == "" {
		err = cli.engine.Export(ctx, path)
	} else {
		err = cli.engine.ExportQuery(ctx, strings.TrimSuffix(query, ";"), path)
	}
	if err != nil {
		cli.printError(err)
		return
	}
	cli.printSuccess("Exported to %s", path)
}

func (cli *CLI) showJournal(args []string) {
	if cli.journal == nil {
		cli.printError(errors.New("journal is disabled"))
		return
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	} else if session, err := cli.engine.Session(); err == nil {
		name = session.Table().Name
	}
	if name == "" {
		cli.printUsage(".log <table>")
		return
	}

	batches, err := cli.journal.History(name)
	if err != nil {
		cli.printError(err)
		return
	}
	if len(batches) == 0 {
		fmt.Fprintln(cli.out, "No journaled commits")
		return
	}

	table := db.NewTable(cli.out)
	table.Header([]string{"committed", "batch", "inserted", "updated", "deleted", "rows"})
	for _, batch := range batches {
		table.Row([]string{
			batch.CommittedAt.Format("2006-01-02 15:04:05"),
			batch.ID,
			fmt.Sprint(batch.Inserted),
			fmt.Sprint(batch.Updated),
			fmt.Sprint(batch.Deleted),
			fmt.Sprint(batch.RowsAffected),
		})
	}
	table.Render()
}

func (cli *CLI) push(remote string) {
	if cli.journal == nil {
		cli.printError(errors.New("journal is disabled"))
		return
	}
	if err := cli.journal.Push(remote, nil); err != nil {
		cli.printError(err)
		return
	}
	cli.printSuccess("Journal pushed")
}

func (cli *CLI) addToHistory(cmd string) {
	// Don't add duplicates of the last command
	if len(cli.history) > 0 && cli.history[len(cli.history)-1] == cmd {
		return
	}
	cli.history = append(cli.history, cmd)

	// Limit history size
	if len(cli.history) > 1000 {
		cli.history = cli.history[len(cli.history)-1000:]
	}
}

func (cli *CLI) printHistory() {
	if len(cli.history) == 0 {
		fmt.Fprintln(cli.out, "No command history")
		return
	}

	start := 0
	if len(cli.history) > 20 {
		start = len(cli.history) - 20
	}

	for i := start; i < len(cli.history); i++ {
		fmt.Fprintf(cli.out, "  %3d  %s\n", i+1, cli.history[i])
	}
}

func getHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sqlexplorer_history")
}

// importFile executes the statements of a local or remote SQL script
func (cli *CLI) importFile(ctx context.Context, path string) error {
	executed, err := cli.engine.ExecuteScript(ctx, path)
	if err != nil {
		cli.printError(err)
		fmt.Fprintf(cli.out, "%s%d statement(s) executed before the error%s\n", WarnColor, executed, ResetColor)
		return err
	}
	cli.printSuccess("Import complete: %d statement(s) executed", executed)
	return nil
}
