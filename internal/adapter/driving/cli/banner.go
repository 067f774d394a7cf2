package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/walletpulse/wallet-activity-dashboard-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
        __        __    _ _      _     ____        _
        \ \      / /_ _| | | ___| |_  |  _ \ _   _| |___  ___
         \ \ /\ / / _' | | |/ _ \ __| | |_) | | | | / __|/ _ \
          \ V  V / (_| | | |  __/ |_  |  __/| |_| | \__ \  __/
           \_/\_/ \__,_|_|_|\___|\__| |_|    \__,_|_|___/\___|
        `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Wallet Activity Dashboard CLI (v%s)", formattedVersion)))
}
