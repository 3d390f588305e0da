package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/9seconds/geolocator/locator"
)

func resolveQuery(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	requestBody := resolveRequestStruct{
		Ips:       strings.Split(query.Get("ip"), ","),
		Precision: query.Get("precision"),
	}

	if value := query.Get("backup_first"); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			abort(w, http.StatusBadRequest, "Incorrect value of backup_first")
			return
		}

		requestBody.BackupFirst = &parsed
	}

	resolve(w, r, &requestBody)
}

func resolveBody(w http.ResponseWriter, r *http.Request) {
	requestBody := resolveRequestStruct{}

	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		abort(w, http.StatusBadRequest, err.Error())
		return
	}

	resolve(w, r, &requestBody)
}

func resolve(w http.ResponseWriter, r *http.Request, requestBody *resolveRequestStruct) {
	settings := getSettings(r)

	if err := requestBody.Validate(); err != nil {
		abort(w, http.StatusBadRequest, err.Error())
		return
	}

	conf, err := requestBody.Apply(settings.Config)
	if err != nil {
		abort(w, http.StatusBadRequest, err.Error())
		return
	}

	client, ok, err := settings.newClient(conf, requestBody.Ips)
	switch {
	case err != nil:
		abort(w, http.StatusInternalServerError, err.Error())
		return
	case !ok:
		abort(w, http.StatusBadRequest,
			"Too many ips, maximum is "+strconv.Itoa(locator.MaxAddresses))
		return
	}

	entries, err := client.Locations(r.Context())
	if err != nil {
		code := http.StatusInternalServerError
		if locator.IsLookupError(err) {
			code = http.StatusBadGateway
		}

		abort(w, code, err.Error())

		return
	}

	respond(w, resolveResponseStruct{Results: entries})
}
