package main

import (
	"fmt"
	"io"
	"strings"
)

const (
	progName = "mdbook-pagebreaks"
	funcName = "mdbook_pagebreaks" // shell-safe form of progName
)

// valueFlags returns the flags that take a completable value, once per long name.
func valueFlags(cmds []commandDef) []flagDef {
	seen := make(map[string]bool)
	var out []flagDef
	for _, c := range cmds {
		for _, f := range c.Flags {
			if f.Type == flagBool || seen[f.Long] {
				continue
			}
			seen[f.Long] = true
			out = append(out, f)
		}
	}
	return out
}

func generateBash(w io.Writer, cmds []commandDef) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# bash completion for %s\n", progName)
	fmt.Fprintf(&b, "_%s_completions() {\n", funcName)
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\"))\n", commandList(cmds, " "))
	b.WriteString("        return\n    fi\n\n")

	b.WriteString("    case \"${prev}\" in\n")
	for _, f := range valueFlags(cmds) {
		pattern := "--" + f.Long
		if f.Short != "" {
			pattern += "|-" + f.Short
		}
		var reply string
		switch f.Type {
		case flagEnum:
			reply = fmt.Sprintf("compgen -W \"%s\" -- \"${cur}\"", strings.Join(f.Values, " "))
		case flagFile:
			reply = "compgen -f -- \"${cur}\""
		case flagDir:
			reply = "compgen -d -- \"${cur}\""
		default:
			reply = ""
		}
		if reply == "" {
			fmt.Fprintf(&b, "        %s) return ;;\n", pattern)
			continue
		}
		fmt.Fprintf(&b, "        %s) COMPREPLY=($(%s)); return ;;\n", pattern, reply)
	}
	b.WriteString("    esac\n\n")

	b.WriteString("    case \"${cmd}\" in\n")
	for _, c := range cmds {
		words := strings.TrimSpace(strings.Join(c.Args, " ") + " " + flagWords(c.Flags))
		if words == "" {
			continue
		}
		fmt.Fprintf(&b, "        %s) COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\")) ;;\n", c.Name, words)
	}
	b.WriteString("    esac\n}\n")
	fmt.Fprintf(&b, "complete -F _%s_completions %s\n", funcName, progName)

	_, err := io.WriteString(w, b.String())
	return err
}

// zshFlagSpec renders one _arguments spec for a flag.
func zshFlagSpec(f flagDef) string {
	var action string
	switch f.Type {
	case flagBool:
		action = ""
	case flagEnum:
		action = fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
	case flagFile:
		action = fmt.Sprintf(":file:_files -g \"%s\"", strings.ReplaceAll(f.FileGlob, ",", " "))
	case flagDir:
		action = ":directory:_files -/"
	default:
		action = ":value:"
	}

	if f.Short == "" {
		return fmt.Sprintf("'--%s[%s]%s'", f.Long, f.Desc, action)
	}
	return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, f.Desc, action)
}

func generateZsh(w io.Writer, cmds []commandDef) error {
	var b strings.Builder

	fmt.Fprintf(&b, "#compdef %s\n\n", progName)
	fmt.Fprintf(&b, "_%s() {\n", funcName)
	b.WriteString("    local -a commands\n    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, c.Desc)
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n        return\n    fi\n\n")
	b.WriteString("    local cmd=\"${words[2]}\"\n    shift words\n    (( CURRENT-- ))\n\n")

	b.WriteString("    case \"${cmd}\" in\n")
	for _, c := range cmds {
		specs := make([]string, 0, len(c.Flags)+1)
		for _, f := range c.Flags {
			specs = append(specs, zshFlagSpec(f))
		}
		if len(c.Args) > 0 {
			specs = append(specs, fmt.Sprintf("'1:%s:(%s)'", c.Name, strings.Join(c.Args, " ")))
		}
		if len(specs) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n            _arguments \\\n                %s\n            ;;\n",
			c.Name, strings.Join(specs, " \\\n                "))
	}
	b.WriteString("    esac\n}\n\n")
	fmt.Fprintf(&b, "_%s \"$@\"\n", funcName)

	_, err := io.WriteString(w, b.String())
	return err
}

func generateFish(w io.Writer, cmds []commandDef) error {
	var b strings.Builder
	needs := "__fish_" + funcName + "_needs_command"
	using := "__fish_" + funcName + "_using_command"

	fmt.Fprintf(&b, "# fish completion for %s\n", progName)
	fmt.Fprintf(&b, "function %s\n    set -l cmd (commandline -opc)\n    test (count $cmd) -eq 1\nend\n\n", needs)
	fmt.Fprintf(&b, "function %s\n    set -l cmd (commandline -opc)\n    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\nend\n\n", using)
	fmt.Fprintf(&b, "complete -c %s -f\n", progName)

	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c %s -n %s -a %s -d '%s'\n", progName, needs, c.Name, c.Desc)
	}

	for _, c := range cmds {
		cond := fmt.Sprintf("'%s %s'", using, c.Name)
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "complete -c %s -n %s -a '%s'\n", progName, cond, strings.Join(c.Args, " "))
		}
		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c %s -n %s -l %s", progName, cond, f.Long)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			line += fmt.Sprintf(" -d '%s'", f.Desc)
			switch f.Type {
			case flagEnum:
				line += fmt.Sprintf(" -r -a '%s'", strings.Join(f.Values, " "))
			case flagFile:
				line += " -r -F"
			case flagDir:
				line += " -r -a '(__fish_complete_directories)'"
			case flagString:
				line += " -r"
			}
			b.WriteString(line + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func generatePowerShell(w io.Writer, cmds []commandDef) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# powershell completion for %s\n", progName)
	fmt.Fprintf(&b, "Register-ArgumentCompleter -Native -CommandName %s -ScriptBlock {\n", progName)
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")
	b.WriteString("    $elements = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })\n")
	b.WriteString("    $commands = [ordered]@{\n")
	for _, c := range cmds {
		words := append(append([]string{}, c.Args...), strings.Fields(flagWords(c.Flags))...)
		quoted := make([]string, len(words))
		for i, word := range words {
			quoted[i] = "'" + word + "'"
		}
		fmt.Fprintf(&b, "        '%s' = @(%s)\n", c.Name, strings.Join(quoted, ", "))
	}
	b.WriteString("    }\n\n")
	b.WriteString("    if ($elements.Count -le 1 -or ($elements.Count -eq 2 -and $wordToComplete -ne '')) {\n")
	b.WriteString("        $candidates = $commands.Keys\n")
	b.WriteString("    } else {\n")
	b.WriteString("        $candidates = $commands[$elements[1]]\n")
	b.WriteString("    }\n\n")
	b.WriteString("    $candidates | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("    }\n}\n")

	_, err := io.WriteString(w, b.String())
	return err
}
