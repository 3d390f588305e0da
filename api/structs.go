package api

import (
	"strings"

	"github.com/juju/errors"

	"github.com/9seconds/geolocator/locator"
)

type resolveResponseStruct struct {
	Results []locator.Entry `json:"results"`
}

type settingsInfoResponseStruct struct {
	Precision       locator.Precision `json:"precision"`
	UseBackupFirst  bool              `json:"use_backup_first"`
	ConnectTimeout  float64           `json:"connect_timeout"`
	TransferTimeout float64           `json:"transfer_timeout"`
	MaxAddresses    int               `json:"max_addresses"`
}

type resolveRequestStruct struct {
	Ips         []string `json:"ips"`
	Precision   string   `json:"precision,omitempty"`
	BackupFirst *bool    `json:"backup_first,omitempty"`
}

// Apply changes base configuration according to request parameters.
func (req *resolveRequestStruct) Apply(conf locator.Config) (locator.Config, error) {
	if req.Precision != "" {
		precision, err := locator.ParsePrecision(req.Precision)
		if err != nil {
			return conf, errors.Trace(err)
		}

		if conf, err = conf.WithPrecision(precision); err != nil {
			return conf, errors.Trace(err)
		}
	}

	if req.BackupFirst != nil {
		conf = conf.WithUseBackupFirst(*req.BackupFirst)
	}

	return conf, nil
}

func (req *resolveRequestStruct) Validate() error {
	ips := make([]string, 0, len(req.Ips))

	for _, v := range req.Ips {
		if v = strings.TrimSpace(v); v != "" {
			ips = append(ips, v)
		}
	}

	if len(ips) == 0 {
		return errors.New("Please provide ips to resolve")
	}

	req.Ips = ips

	return nil
}
