package cli

// Examples is shown under the root command's help.
const Examples = `  # save the current defaults, flags and MISCLASS_* settings to misclass.yaml
  misclass config init --threshold 300

  # classify only, no assembler involved
  misclass classify quast_out/

  # write the hand-off input, run the assembler yourself, then collect
  misclass prepare quast_out/ spades_out/ contigs.fasta ref.fasta
  misclass collect quast_out/ spades_out/ contigs.fasta ref.fasta -o json

  # do both and wait up to an hour for the assembler
  misclass run --wait-timeout 1h quast_out/ spades_out/ contigs.fasta ref.fasta`
