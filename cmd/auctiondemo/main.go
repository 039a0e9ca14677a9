// Command auctiondemo runs the auction assignment solver on random or
// file-provided benefit matrices and reports timing and assignments.
package main

func main() {
	execute()
}
