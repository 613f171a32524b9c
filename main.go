package main

import (
	"oss.terrastruct.com/utfgen/lib/xmain"
	"oss.terrastruct.com/utfgen/utfgencli"
)

func main() {
	xmain.Main(utfgencli.Run)
}
