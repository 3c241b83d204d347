//go:build windows

package venv

// InterpreterSubpath is the interpreter location inside a virtual environment.
const InterpreterSubpath = `Scripts\python.exe`

// SystemInterpreter is the generic interpreter name looked up on PATH.
const SystemInterpreter = "python"
