package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ergochat/readline"

	"minisql/internal/engine"
	"minisql/internal/render"
	"minisql/internal/sql"
)

const (
	prompt     = "sql> "
	contPrompt = "  -> "
)

// runShell reads statements from the terminal and executes them until
// EXIT or end of input. Input is buffered across lines until a ';'
// appears; a statement failure prints the error and the loop continues.
func runShell(eng *engine.Engine) error {
	rl, err := readline.New(prompt)
	if err != nil {
		return fmt.Errorf("init readline: %w", err)
	}
	defer rl.Close()

	fmt.Println("Welcome to minisql!")
	fmt.Println("Statements end with ';'. Supported: CREATE, INSERT, UPDATE, DELETE, ALTER, DROP, SELECT, SHOW, EXIT")
	fmt.Println()

	var accum string
	for {
		line, err := rl.Readline()
		if err != nil {
			// Ctrl-D / Ctrl-C ends the session
			break
		}
		accum += line + "\n"

		for {
			semi := strings.Index(accum, ";")
			if semi == -1 {
				break
			}
			input := strings.TrimSpace(accum[:semi+1])
			accum = strings.TrimSpace(accum[semi+1:])
			if input == "" || input == ";" {
				continue
			}
			if isExit(input) {
				fmt.Println("Goodbye!")
				return nil
			}
			runStatement(eng, rl, input)
		}

		if accum != "" {
			rl.SetPrompt(contPrompt)
		} else {
			rl.SetPrompt(prompt)
		}
	}

	fmt.Println("Goodbye!")
	return nil
}

func isExit(input string) bool {
	return strings.EqualFold(strings.TrimSpace(strings.TrimSuffix(input, ";")), "EXIT")
}

func runStatement(eng *engine.Engine, rl *readline.Instance, input string) {
	stmt, err := sql.Parse(input)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	res, err := eng.Execute(stmt)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	if res.NeedsConfirm {
		if del, ok := stmt.(*sql.DeleteStmt); ok {
			confirmTruncate(eng, rl, del.TableName, res.Message)
		}
		return
	}

	printResult(res)
}

// confirmTruncate gates an unconditional DELETE behind a single-line
// confirmation. Declining is a cancellation, not an error.
func confirmTruncate(eng *engine.Engine, rl *readline.Instance, table, warning string) {
	fmt.Println("WARNING:", warning)
	rl.SetPrompt("Are you sure you want to continue? (Y/N): ")
	defer rl.SetPrompt(prompt)

	line, err := rl.Readline()
	if err != nil || !strings.EqualFold(strings.TrimSpace(line), "y") {
		fmt.Println("Operation cancelled.")
		return
	}

	res, err := eng.Truncate(table)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(res.Message)
}

func printResult(res *engine.Result) {
	if res.Header != nil {
		rows := append([][]string{res.Header}, res.Rows...)
		if err := render.Table(os.Stdout, rows); err != nil {
			fmt.Println("Error:", err)
			return
		}
		fmt.Printf("%d row(s).\n", len(res.Rows))
	}
	if res.Message != "" {
		fmt.Println(res.Message)
	}
}
