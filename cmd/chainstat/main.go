// Command chainstat counts word frequencies in text files using the chained
// hash table and reports on the table's shape.
package main

func main() {
	execute()
}
