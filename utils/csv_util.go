package utils

import (
	"encoding/csv"
	"fmt"
	"os"
)

func CreateCsv(path string, data [][]string) error {
	csvFile, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer csvFile.Close()
	csvWriter := csv.NewWriter(csvFile)
	err = csvWriter.WriteAll(data)
	if err != nil {
		fmt.Printf("error (%v)", err)
		return err
	}
	return nil
}
