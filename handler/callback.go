package handler

import (
	"github.com/ONSdigital/dp-fetcher/fetcher"
	"github.com/ONSdigital/log.go/v2/log"
)

// unwrapLogData merges the logData of every error in the chain. Keys set
// by outer errors win.
func unwrapLogData(err error) log.Data {
	ld := log.Data{}
	for _, d := range fetcher.UnwrapLogData(err) {
		for k, v := range d {
			if _, ok := ld[k]; !ok {
				ld[k] = v
			}
		}
	}

	return ld
}
