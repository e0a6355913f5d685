package router

import (
	"fmt"

	helpers "superbox/src/middleware/helpers"
	api "superbox/src/middleware/helpers/api"
	superbox "superbox/src/middleware/modules/superbox"
)

// Values shown by Router Info, in display order.
var infoNames = []string{"wa_inner_version", "cr_version"}

var infoLabels = map[string]string{
	"wa_inner_version": "Inner Version",
	"cr_version":       "CR Version",
}

func RouterInfo(logger *helpers.ColorizedLogger, session *superbox.Session) {
	values, err := session.GetValues(infoNames...)
	if err != nil {
		logger.Error("Failed To Fetch Router Info: " + err.Error())
		return
	}

	logger.Info(fmt.Sprintf("Router: %s", session.BaseURL()))
	for _, name := range infoNames {
		value := api.ToString(values[name])
		if value == "" {
			value = "-"
		}
		logger.Info(fmt.Sprintf("\t%s: %s", infoLabels[name], value))
	}
}
