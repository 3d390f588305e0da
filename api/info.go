package api

import (
	"net/http"

	"github.com/9seconds/geolocator/locator"
)

func settingsInfo(w http.ResponseWriter, r *http.Request) {
	conf := getSettings(r).Config

	respond(w, settingsInfoResponseStruct{
		Precision:       conf.Precision(),
		UseBackupFirst:  conf.UseBackupFirst(),
		ConnectTimeout:  conf.ConnectTimeout().Seconds(),
		TransferTimeout: conf.TransferTimeout().Seconds(),
		MaxAddresses:    locator.MaxAddresses,
	})
}
