package config

// The following fields are available for use in the submit template:
//
// Name        job name
// RunID       simsub run id
// WorkDir     run working directory
// OutputDir   job output directory
// OutputFile  job output file name
// Command     command to run
// Cpus        requested cpus
// RamGb       requested ram
// Time        requested wall time
// Partition   requested partition

// See https://golang.org/pkg/text/template for more information

var slurmTemplate = `#!/bin/bash
#SBATCH --job-name {{.Name}}
#SBATCH --ntasks 1
#SBATCH --chdir {{.WorkDir}}
#SBATCH --error {{.OutputDir}}/{{.OutputFile}}
#SBATCH --output {{.OutputDir}}/{{.OutputFile}}
{{if ne .Cpus 0 -}}
{{printf "#SBATCH --cpus-per-task %d" .Cpus}}
{{- end}}
{{if ne .RamGb 0.0 -}}
{{printf "#SBATCH --mem %.0fGB" .RamGb}}
{{- end}}
{{if ne .Time "" -}}
{{printf "#SBATCH --time %s" .Time}}
{{- end}}
{{if ne .Partition "" -}}
{{printf "#SBATCH --partition %s" .Partition}}
{{- end}}

{{.Command}}
`
