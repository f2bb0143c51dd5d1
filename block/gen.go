package block

//go:generate go run ./internal/genarity -out blocks_gen.go
