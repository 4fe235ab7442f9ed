package main

import syncform "github.com/datazip-inc/olake-syncform"

func main() {
	syncform.Execute()
}
