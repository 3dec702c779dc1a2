package project

import (
	"errors"
	"fmt"
)

const (
	artifactsRootRequiredMessageConstant = "artifacts_root must be provided"
	imageSizeDimensionsMessageConstant   = "image_size must list height, width and channels"
	learningRatePositiveMessageConstant  = "learning_rate must be positive"
	positiveValueTemplateConstant        = "%s must be positive"
	imageSizeFieldNameConstant           = "image_size"
	batchSizeFieldNameConstant           = "batch_size"
	epochsFieldNameConstant              = "epochs"
	classesFieldNameConstant             = "classes"
	imageSizeDimensionCountConstant      = 3
)

// Configuration mirrors config/config.yaml.
type Configuration struct {
	ArtifactsRoot string                `yaml:"artifacts_root" json:"artifacts_root"`
	DataIngestion DataIngestionSettings `yaml:"data_ingestion" json:"data_ingestion"`
}

// DataIngestionSettings locates the raw dataset and where it is unpacked.
type DataIngestionSettings struct {
	RootDirectory  string `yaml:"root_dir" json:"root_dir"`
	SourceURL      string `yaml:"source_url" json:"source_url"`
	LocalDataFile  string `yaml:"local_data_file" json:"local_data_file"`
	UnzipDirectory string `yaml:"unzip_dir" json:"unzip_dir"`
}

// Validate checks the required configuration entries.
func (configuration *Configuration) Validate() error {
	if len(configuration.ArtifactsRoot) == 0 {
		return errors.New(artifactsRootRequiredMessageConstant)
	}
	return nil
}

// Parameters mirrors params.yaml.
type Parameters struct {
	ImageSize    []int   `yaml:"image_size" json:"image_size"`
	BatchSize    int     `yaml:"batch_size" json:"batch_size"`
	Epochs       int     `yaml:"epochs" json:"epochs"`
	Classes      int     `yaml:"classes" json:"classes"`
	LearningRate float64 `yaml:"learning_rate" json:"learning_rate"`
	Augmentation bool    `yaml:"augmentation" json:"augmentation"`
	IncludeTop   bool    `yaml:"include_top" json:"include_top"`
	Weights      string  `yaml:"weights" json:"weights"`
}

// Validate checks that sizes and counts are usable for training.
func (parameters *Parameters) Validate() error {
	if len(parameters.ImageSize) != imageSizeDimensionCountConstant {
		return errors.New(imageSizeDimensionsMessageConstant)
	}
	for _, dimension := range parameters.ImageSize {
		if dimension <= 0 {
			return fmt.Errorf(positiveValueTemplateConstant, imageSizeFieldNameConstant)
		}
	}

	positiveFields := []struct {
		name  string
		value int
	}{
		{name: batchSizeFieldNameConstant, value: parameters.BatchSize},
		{name: epochsFieldNameConstant, value: parameters.Epochs},
		{name: classesFieldNameConstant, value: parameters.Classes},
	}
	for _, field := range positiveFields {
		if field.value <= 0 {
			return fmt.Errorf(positiveValueTemplateConstant, field.name)
		}
	}

	if parameters.LearningRate <= 0 {
		return errors.New(learningRatePositiveMessageConstant)
	}
	return nil
}

// Settings bundles the project configuration and training parameters.
type Settings struct {
	Configuration Configuration `json:"config"`
	Parameters    Parameters    `json:"params"`
}
