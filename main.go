/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
	"k8s.io/klog/v2/textlogger"

	"sigs.k8s.io/azure-vmss-inventory/azure"
	"sigs.k8s.io/azure-vmss-inventory/azure/scope"
	"sigs.k8s.io/azure-vmss-inventory/azure/services/azcli"
	"sigs.k8s.io/azure-vmss-inventory/pkg/inventory"
	"sigs.k8s.io/azure-vmss-inventory/pkg/terraform"
	"sigs.k8s.io/azure-vmss-inventory/util/tele"
	"sigs.k8s.io/azure-vmss-inventory/version"
)

var (
	terraformOutputsPath string
	backend              string
	azPath               string
	ansibleUser          string
	keyFile              string
	inventoryFile        string
	outputFormat         string
	subscriptionID       string
	azureEnvironment     string
	strictSecret         bool
	listInventory        bool
	hostVars             string
	metricsFile          string
	enableTracing        bool
	tracingEndpoint      string
	verbosity            int
	printVersion         bool
)

// executableDir locates the directory relative outputs paths are resolved against.
var executableDir = terraform.ExecutableDir

// InitFlags initializes the flags.
func InitFlags(fs *pflag.FlagSet) {
	fs.StringVar(
		&terraformOutputsPath,
		"terraform-outputs",
		azure.DefaultTerraformOutputsFile,
		"Path of the JSON document written by 'terraform output -json'. A relative path is resolved against the directory of this executable.",
	)

	fs.StringVar(
		&backend,
		"backend",
		scope.BackendCLI,
		fmt.Sprintf("How Azure is queried, either %q (the az command line tool) or %q (the Azure SDK).", scope.BackendCLI, scope.BackendSDK),
	)

	fs.StringVar(
		&azPath,
		"az-path",
		"",
		fmt.Sprintf("Location of the az binary used by the cli backend. Defaults to $%s, then %q.", azcli.AzEnvVarName, azcli.AzDefault),
	)

	fs.StringVar(
		&ansibleUser,
		"ansible-user",
		azure.DefaultAnsibleUser,
		"SSH user Ansible connects to the hosts with.",
	)

	fs.StringVar(
		&keyFile,
		"key-file",
		azure.DefaultSSHPrivateKeyFile,
		"Where the SSH private key fetched from Key Vault is written.",
	)

	fs.StringVar(
		&inventoryFile,
		"inventory-file",
		azure.DefaultInventoryFile,
		"Where the inventory is written.",
	)

	fs.StringVar(
		&outputFormat,
		"output-format",
		scope.OutputFormatJSON,
		fmt.Sprintf("Format of the inventory file, either %q or %q.", scope.OutputFormatJSON, scope.OutputFormatYAML),
	)

	fs.StringVar(
		&subscriptionID,
		"subscription-id",
		"",
		fmt.Sprintf("Azure subscription used by the sdk backend. Defaults to $%s, then the subscription_id terraform output.", scope.SubscriptionIDEnvVarName),
	)

	fs.StringVar(
		&azureEnvironment,
		"azure-environment",
		"",
		fmt.Sprintf("Azure cloud used by the sdk backend, one of %s, %s or %s. Defaults to $%s, then %s.",
			azure.PublicCloudName, azure.ChinaCloudName, azure.USGovernmentCloudName, scope.EnvironmentEnvVarName, azure.PublicCloudName),
	)

	fs.BoolVar(
		&strictSecret,
		"strict-secret",
		false,
		"Fail the run when the SSH private key cannot be fetched. Without it only an empty secret fails the run.",
	)

	fs.BoolVar(
		&listInventory,
		"list",
		false,
		"Also print the inventory to stdout in the Ansible inventory script format. Logs go to stderr.",
	)

	fs.StringVar(
		&hostVars,
		"host",
		"",
		"Also print the variables of this host to stdout in the Ansible inventory script format. Logs go to stderr.",
	)

	fs.StringVar(
		&metricsFile,
		"metrics-file",
		"",
		"If set, Prometheus metrics of the run are written to this file for the node_exporter textfile collector.",
	)

	fs.BoolVar(
		&enableTracing,
		"enable-tracing",
		false,
		"Enable tracing to the OTLP endpoint.",
	)

	fs.StringVar(
		&tracingEndpoint,
		"tracing-endpoint",
		"",
		"OTLP gRPC endpoint traces are sent to. Defaults to $OTEL_EXPORTER_OTLP_ENDPOINT.",
	)

	fs.IntVarP(
		&verbosity,
		"verbosity",
		"v",
		0,
		"Number for the log level verbosity.",
	)

	fs.BoolVar(
		&printVersion,
		"version",
		false,
		"Print the version and exit.",
	)
}

func main() {
	InitFlags(pflag.CommandLine)
	pflag.Parse()

	if printVersion {
		fmt.Println(version.Get().Long())
		return
	}

	os.Exit(run(context.Background()))
}

// run generates the inventory and returns the process exit code.
func run(ctx context.Context) int {
	logOutput := os.Stdout
	if listInventory || hostVars != "" {
		logOutput = os.Stderr
	}
	ctx, corrID := tele.CtxWithCorrID(ctx)
	log := textlogger.NewLogger(textlogger.NewConfig(
		textlogger.Output(logOutput),
		textlogger.Verbosity(verbosity),
	)).WithValues(tele.CorrIDHeader, corrID)
	klog.SetLogger(log)
	ctx = klog.NewContext(ctx, log)

	if enableTracing {
		shutdown, err := tele.InitTracing(ctx, tracingEndpoint)
		if err != nil {
			log.Error(err, "failed to init tracing")
			return 1
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Error(err, "failed to flush traces")
			}
		}()
	}

	var metrics *inventory.Metrics
	if metricsFile != "" {
		metrics = inventory.NewMetrics()
		defer func() {
			if err := metrics.WriteToTextfile(metricsFile); err != nil {
				log.Error(err, "failed to write metrics")
			}
		}()
	}

	outputsPath := terraformOutputsPath
	if !filepath.IsAbs(outputsPath) {
		dir, err := executableDir()
		if err != nil {
			log.Error(err, "Terraform outputs not found.", "path", outputsPath)
			return 1
		}
		outputsPath = terraform.ResolvePath(outputsPath, dir)
	}

	s, err := scope.NewInventoryScope(ctx, scope.InventoryScopeParams{
		TerraformOutputsPath: outputsPath,
		Backend:              backend,
		SubscriptionID:       subscriptionID,
		Environment:          azureEnvironment,
		AnsibleUser:          ansibleUser,
		KeyFile:              keyFile,
		InventoryFile:        inventoryFile,
		OutputFormat:         outputFormat,
		StrictSecret:         strictSecret,
	})
	if err != nil {
		if terraform.IsNotFound(err) {
			log.Error(err, "Terraform outputs not found.", "path", outputsPath)
		} else {
			log.Error(err, "Invalid configuration")
		}
		return 1
	}

	if azPath == "" {
		azPath = azcli.GetAzExecutablePath()
	}
	source, err := inventory.NewSource(s, azPath)
	if err != nil {
		log.Error(err, "failed to create inventory source", "backend", s.Backend())
		return 1
	}

	gen := &inventory.Generator{Scope: s, Source: source, Metrics: metrics}
	inv, err := gen.Generate(ctx)
	if err != nil {
		return 1
	}

	if err := inventory.WriteFile(inv, s.InventoryFilePath(), s.OutputFormat()); err != nil {
		log.Error(err, "failed to write inventory")
		return 1
	}
	log.V(2).Info("inventory written", "path", s.InventoryFilePath(), "hosts", len(inv.ScaleSet().Hosts))

	if err := printScript(log, inv); err != nil {
		log.Error(err, "failed to print inventory")
		return 1
	}
	return 0
}

// printScript prints the inventory script output requested by --list or --host.
func printScript(log logr.Logger, inv *inventory.Inventory) error {
	var (
		data []byte
		err  error
	)
	switch {
	case listInventory:
		data, err = inventory.ScriptList(inv)
	case hostVars != "":
		data, err = inventory.ScriptHost(inv, hostVars)
	default:
		return nil
	}
	if err != nil {
		return err
	}
	log.V(4).Info("printing inventory script output", "bytes", len(data))
	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}
